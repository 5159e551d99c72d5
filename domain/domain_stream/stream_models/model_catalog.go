package stream_models

// CatalogArtist 目录服务返回的艺术家元数据
type CatalogArtist struct {
	Name       string   `json:"name"`
	Followers  int64    `json:"followers"`
	Popularity int      `json:"popularity"`
	Genres     []string `json:"genres"`
	Image      string   `json:"image"`
}

// CatalogTrack 目录服务返回的单曲元数据
type CatalogTrack struct {
	Title string `json:"title"`
	ISRC  string `json:"isrc"`
	Image string `json:"image"`
}

// CatalogAlbum 目录服务返回的专辑元数据
type CatalogAlbum struct {
	Title string `json:"title"`
	Image string `json:"image"`
}
