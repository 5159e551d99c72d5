package scraper

import (
	"strconv"
	"strings"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// 源表格标题列的脚注标记，单曲为 '*'，专辑为 '^'，无语义只需剥除
const (
	songTitleMarker  = "*"
	albumTitleMarker = "^"
)

// ParseCount 去千分位逗号后解析整数
// 解析失败返回 nil 表示未知，绝不折算为0（0是合法观测值）
func ParseCount(raw string) *int64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return nil
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// StripTitleMarker 剥除行首的类别标记字符（只剥一个），再去首尾空白
func StripTitleMarker(raw, marker string) string {
	return strings.TrimSpace(strings.TrimPrefix(raw, marker))
}

// IDFromLink 取超链接最后一个路径段作为实体id
func IDFromLink(link string) string {
	if link == "" {
		return ""
	}
	parts := strings.Split(link, "/")
	return parts[len(parts)-1]
}

// LeaderboardIDFromLink 榜单链接的末段带 "_songs.html" 之类的后缀，
// 取最后一个 '_' 之前的部分作为实体id
func LeaderboardIDFromLink(link string) string {
	segment := IDFromLink(link)
	if idx := strings.LastIndex(segment, "_"); idx >= 0 {
		return segment[:idx]
	}
	return segment
}

// SplitCompound 拆 "Artist - Title" 复合串，只按第一个 '-' 拆
// 无分隔符时两者都视为未知，不做猜测
func SplitCompound(raw string) (artist, title string, ok bool) {
	idx := strings.Index(raw, "-")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+1:]), true
}

// ParseSongRows 单曲表逐行解析，列数不足或缺链接的行整行丢弃
func ParseSongRows(rows []stream_models.RawRow) []stream_models.SongRow {
	spec := categorySpecs[stream_models.CategorySongs]
	parsed := make([]stream_models.SongRow, 0, len(rows))
	for _, row := range rows {
		if len(row.Cells) < spec.minColumns {
			continue
		}
		id := IDFromLink(row.Link)
		if id == "" {
			continue
		}
		parsed = append(parsed, stream_models.SongRow{
			SpotifyID: id,
			Title:     StripTitleMarker(row.Cells[0], songTitleMarker),
			Total:     ParseCount(row.Cells[1]),
			Daily:     ParseCount(row.Cells[2]),
		})
	}
	return parsed
}

// ParseAlbumRows 专辑表逐行解析
func ParseAlbumRows(rows []stream_models.RawRow) []stream_models.AlbumRow {
	spec := categorySpecs[stream_models.CategoryAlbums]
	parsed := make([]stream_models.AlbumRow, 0, len(rows))
	for _, row := range rows {
		if len(row.Cells) < spec.minColumns {
			continue
		}
		id := IDFromLink(row.Link)
		if id == "" {
			continue
		}
		parsed = append(parsed, stream_models.AlbumRow{
			SpotifyID: id,
			Title:     StripTitleMarker(row.Cells[0], albumTitleMarker),
			Total:     ParseCount(row.Cells[1]),
			Daily:     ParseCount(row.Cells[2]),
		})
	}
	return parsed
}

// ParseOverallRows 汇总表逐行解析，第0列为 Streams/Daily/Tracks 行标签
func ParseOverallRows(rows []stream_models.RawRow) []stream_models.OverallRow {
	spec := categorySpecs[stream_models.CategoryOverall]
	parsed := make([]stream_models.OverallRow, 0, len(rows))
	for _, row := range rows {
		if len(row.Cells) < spec.minColumns {
			continue
		}
		parsed = append(parsed, stream_models.OverallRow{
			Type:    strings.TrimSpace(row.Cells[0]),
			Total:   ParseCount(row.Cells[1]),
			Lead:    ParseCount(row.Cells[2]),
			Solo:    ParseCount(row.Cells[3]),
			Feature: ParseCount(row.Cells[4]),
		})
	}
	return parsed
}

// ParseLeaderboardRows 榜单表逐行解析
// 第0列为 "Artist - Title" 复合串（榜单链接末段带 '_' 后缀需剥除），末列为数值
func ParseLeaderboardRows(category stream_models.ScrapeCategory, rows []stream_models.RawRow) []stream_models.LeaderboardRow {
	spec := categorySpecs[category]
	parsed := make([]stream_models.LeaderboardRow, 0, len(rows))
	for _, row := range rows {
		if len(row.Cells) < spec.minColumns {
			continue
		}
		id := LeaderboardIDFromLink(row.Link)
		if id == "" {
			continue
		}
		artist, title, _ := SplitCompound(row.Cells[0])
		parsed = append(parsed, stream_models.LeaderboardRow{
			SpotifyID: id,
			Artist:    artist,
			Title:     title,
			Value:     ParseCount(row.Cells[len(row.Cells)-1]),
		})
	}
	return parsed
}
