package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_interface"
	"github.com/soundpulse/soundpulse-backend/domain/domain_stream/stream_models"
)

// 提取脚本：按下标取表格，行展开为单元格文本数组，第0列超链接单独带出
// 表格数不足时返回 null，由Go侧转为"暂无数据"
const extractTableJS = `(tableIndex, minTables) => {
	const tables = document.querySelectorAll('table');
	if (tables.length < minTables) {
		return null;
	}
	const rows = Array.from(tables[tableIndex].querySelectorAll('tr'));
	return rows.map(row => {
		const columns = Array.from(row.querySelectorAll('td'));
		const anchor = columns.length > 0 ? columns[0].querySelector('a') : null;
		return {
			cells: columns.map(c => c.textContent ? c.textContent : ''),
			link: anchor && anchor.getAttribute('href') ? anchor.getAttribute('href') : ''
		};
	});
}`

// Fetcher 基于 headless 浏览器的表格抓取器，实现 stream_interface.TableFetcher
type Fetcher struct {
	baseURL string
	timeout time.Duration
}

func NewFetcher(baseURL string, timeout time.Duration) stream_interface.TableFetcher {
	return &Fetcher{
		baseURL: baseURL,
		timeout: timeout,
	}
}

// FetchTable 抓取一个实体在指定类别下的原始表格行
// 每次调用独立启动并销毁一个浏览器会话；表格未渲染返回空结果而非错误
func (f *Fetcher) FetchTable(ctx context.Context, category stream_models.ScrapeCategory, entityID string) ([]stream_models.RawRow, error) {
	spec, ok := categorySpecs[category]
	if !ok {
		return nil, &ScrapeError{Category: category, EntityID: entityID, Err: fmt.Errorf("unknown category")}
	}
	if spec.needsID && entityID == "" {
		return nil, &ScrapeError{Category: category, Err: fmt.Errorf("entity id is required")}
	}

	sess, err := newSession()
	if err != nil {
		return nil, &ScrapeError{Category: category, EntityID: entityID, Err: err}
	}
	defer sess.Close()

	page, err := sess.NewPage()
	if err != nil {
		return nil, &ScrapeError{Category: category, EntityID: entityID, Err: fmt.Errorf("failed to create page: %w", err)}
	}
	page = page.Context(ctx)

	url := spec.url(f.baseURL, entityID)
	if err := page.Timeout(f.timeout).Navigate(url); err != nil {
		return nil, &ScrapeError{Category: category, EntityID: entityID, Err: fmt.Errorf("failed to navigate: %w", err)}
	}

	// 等待至少一个表格元素出现，超时即本次抓取失败
	if _, err := page.Timeout(f.timeout).Element("table"); err != nil {
		return nil, &ScrapeError{Category: category, EntityID: entityID, Err: fmt.Errorf("failed to wait for table: %w", err)}
	}

	result, err := page.Timeout(f.timeout).Eval(extractTableJS, spec.tableIndex, spec.minTables)
	if err != nil {
		return nil, &ScrapeError{Category: category, EntityID: entityID, Err: fmt.Errorf("failed to extract table: %w", err)}
	}

	var rows []stream_models.RawRow
	raw, err := result.Value.MarshalJSON()
	if err != nil {
		return nil, &ScrapeError{Category: category, EntityID: entityID, Err: fmt.Errorf("failed to encode rows: %w", err)}
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &ScrapeError{Category: category, EntityID: entityID, Err: fmt.Errorf("failed to decode rows: %w", err)}
	}
	if rows == nil {
		// 脚本返回null：期望的表格尚未渲染，视为暂无数据而非失败
		return nil, nil
	}

	return spec.dataRows(rows), nil
}
