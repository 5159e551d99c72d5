package domain

const (
	CollectionStreamArtist = "stream_stats_artist"
)
const (
	CollectionStreamSong = "stream_stats_song"
)
const (
	CollectionStreamAlbum = "stream_stats_album"
)

const (
	CollectionPriorityArtist = "priority_artists"
)
const (
	CollectionUserFavorite = "user_favorites"
)
