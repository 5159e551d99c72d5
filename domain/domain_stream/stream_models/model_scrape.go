package stream_models

// ScrapeCategory 抓取数据类别，决定目标页面与表格切片方式
type ScrapeCategory string

const (
	CategorySongs                ScrapeCategory = "songs"
	CategoryAlbums               ScrapeCategory = "albums"
	CategoryOverall              ScrapeCategory = "overall"
	CategoryArtistsLeaderboard   ScrapeCategory = "artists-leaderboard"
	CategoryListenersLeaderboard ScrapeCategory = "listeners-leaderboard"
)

// RawRow 抓取到的原始表格行：按列下标排列的单元格文本，外加第0列的超链接
type RawRow struct {
	Cells []string `json:"cells"`
	Link  string   `json:"link"`
}

// SongRow 单曲表解析行，Total/Daily 为 nil 表示该列缺失或不可解析
type SongRow struct {
	SpotifyID string `json:"spotifyId"`
	Title     string `json:"title"`
	Total     *int64 `json:"total"`
	Daily     *int64 `json:"daily"`
}

// AlbumRow 专辑表解析行
type AlbumRow struct {
	SpotifyID string `json:"spotifyId"`
	Title     string `json:"title"`
	Total     *int64 `json:"total"`
	Daily     *int64 `json:"daily"`
}

// OverallRow 艺术家汇总表解析行，Type 为 Streams/Daily/Tracks 等行标签
type OverallRow struct {
	Type    string `json:"type"`
	Total   *int64 `json:"total"`
	Lead    *int64 `json:"lead"`
	Solo    *int64 `json:"solo"`
	Feature *int64 `json:"feature"`
}

// LeaderboardRow 榜单表解析行，Artist/Title 由 "Artist - Title" 复合串拆出
type LeaderboardRow struct {
	SpotifyID string `json:"spotifyId"`
	Artist    string `json:"artist"`
	Title     string `json:"title"`
	Value     *int64 `json:"value"`
}

// StreamsRowType 等为汇总表第0列的行标签取值
const (
	OverallRowStreams = "Streams"
	OverallRowDaily   = "Daily"
	OverallRowTracks  = "Tracks"
)
