package scraper

import (
	"fmt"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// ScrapeError 一次抓取的故障（启动/导航/超时/结构不符）
// 调用方记录后应跳过当前实体继续，不中断整轮运行
type ScrapeError struct {
	Category stream_models.ScrapeCategory
	EntityID string
	Err      error
}

func (e *ScrapeError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("scrape %s failed: %v", e.Category, e.Err)
	}
	return fmt.Sprintf("scrape %s for %s failed: %v", e.Category, e.EntityID, e.Err)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}
