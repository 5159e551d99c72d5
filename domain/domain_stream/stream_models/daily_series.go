package stream_models

import (
	"github.com/soundpulse/soundpulse-backend/domain/domain_util"
)

// DailySeries 日播放量稀疏序列，键为 DD-MM-YYYY 日期串
// 已写入的日期只增不删，同日期重复写入以新值为准
type DailySeries map[string]int64

// Merge 返回设置了 date -> value 的副本，其余日期不变
func (s DailySeries) Merge(date string, value int64) DailySeries {
	merged := make(DailySeries, len(s)+1)
	for k, v := range s {
		merged[k] = v
	}
	merged[date] = value
	return merged
}

// MergeAll 返回两序列合并后的副本，日期冲突时 other 胜出
func (s DailySeries) MergeAll(other DailySeries) DailySeries {
	merged := make(DailySeries, len(s)+len(other))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Latest 返回按日历序最新一天的键值，忽略无法解析的日期键
func (s DailySeries) Latest() (string, int64, bool) {
	var (
		bestKey string
		bestVal int64
		found   bool
	)
	for k, v := range s {
		t, err := domain_util.ParseStamp(k)
		if err != nil {
			continue
		}
		if !found {
			bestKey, bestVal, found = k, v, true
			continue
		}
		best, _ := domain_util.ParseStamp(bestKey)
		if t.After(best) {
			bestKey, bestVal = k, v
		}
	}
	return bestKey, bestVal, found
}
