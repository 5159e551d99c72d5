package scraper

import (
	"fmt"
	"strings"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// categorySpec 每个数据类别的表格位置配置
// headerRows 必须对照线上表格的实际渲染结构核对，不要靠猜：
// 艺术家页的三张表首行均为表头，榜单页首行即数据
type categorySpec struct {
	pathFormat string // 相对 DATA_SOURCE 的页面路径，含一个 %s 实体id占位（needsID=false 时无占位）
	needsID    bool
	minTables  int // 渲染出的表格数少于此值视为"暂无数据"
	tableIndex int
	headerRows int
	minColumns int
}

var categorySpecs = map[stream_models.ScrapeCategory]categorySpec{
	stream_models.CategorySongs: {
		pathFormat: "spotify/artist/%s_songs.html",
		needsID:    true,
		minTables:  2,
		tableIndex: 1,
		headerRows: 1,
		minColumns: 3,
	},
	stream_models.CategoryOverall: {
		pathFormat: "spotify/artist/%s_songs.html",
		needsID:    true,
		minTables:  2,
		tableIndex: 0,
		headerRows: 1,
		minColumns: 5,
	},
	stream_models.CategoryAlbums: {
		pathFormat: "spotify/artist/%s_albums.html",
		needsID:    true,
		minTables:  1,
		tableIndex: 0,
		headerRows: 1,
		minColumns: 3,
	},
	stream_models.CategoryArtistsLeaderboard: {
		pathFormat: "spotify/artists.html",
		minTables:  1,
		tableIndex: 0,
		headerRows: 0,
		minColumns: 2,
	},
	stream_models.CategoryListenersLeaderboard: {
		pathFormat: "spotify/listeners.html",
		minTables:  1,
		tableIndex: 0,
		headerRows: 0,
		minColumns: 2,
	},
}

func (c categorySpec) url(base, entityID string) string {
	base = strings.TrimSuffix(base, "/")
	if c.needsID {
		return base + "/" + fmt.Sprintf(c.pathFormat, entityID)
	}
	return base + "/" + c.pathFormat
}

// dataRows 按类别配置剔除表头行
func (c categorySpec) dataRows(rows []stream_models.RawRow) []stream_models.RawRow {
	if len(rows) <= c.headerRows {
		return nil
	}
	return rows[c.headerRows:]
}
