package stream_interface

import (
	"context"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// TableFetcher 表格抓取能力，屏蔽具体浏览器自动化实现
// 目标表格未渲染属"暂无数据"，返回空行集而非错误；导航/超时等故障返回错误
type TableFetcher interface {
	FetchTable(ctx context.Context, category stream_models.ScrapeCategory, entityID string) ([]stream_models.RawRow, error)
}
