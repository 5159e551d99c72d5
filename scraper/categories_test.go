package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

func TestCategoryURL(t *testing.T) {
	songs := categorySpecs[stream_models.CategorySongs]
	assert.Equal(t, "https://kworb.net/spotify/artist/a1_songs.html",
		songs.url("https://kworb.net", "a1"))
	// 尾斜杠不产生双斜杠
	assert.Equal(t, "https://kworb.net/spotify/artist/a1_songs.html",
		songs.url("https://kworb.net/", "a1"))

	leaderboard := categorySpecs[stream_models.CategoryArtistsLeaderboard]
	assert.Equal(t, "https://kworb.net/spotify/artists.html",
		leaderboard.url("https://kworb.net", ""))
}

func TestCategoryDataRows(t *testing.T) {
	rows := []stream_models.RawRow{
		{Cells: []string{"表头"}},
		{Cells: []string{"数据1"}},
		{Cells: []string{"数据2"}},
	}

	songs := categorySpecs[stream_models.CategorySongs]
	assert.Len(t, songs.dataRows(rows), 2)
	// 只有表头没有数据行视为空
	assert.Nil(t, songs.dataRows(rows[:1]))

	// 榜单表无表头，首行即数据
	leaderboard := categorySpecs[stream_models.CategoryArtistsLeaderboard]
	assert.Len(t, leaderboard.dataRows(rows), 3)
}
