package domain_util

import "time"

// StampLayout 日流量序列的日期键格式（DD-MM-YYYY）
const StampLayout = "02-01-2006"

// 上游数据源的统计延迟天数
const reportingLagDays = 2

// FormatStamp 将时间格式化为日期键
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}

// ParseStamp 解析日期键，非法格式返回错误
func ParseStamp(s string) (time.Time, error) {
	return time.Parse(StampLayout, s)
}

// EffectiveStamp 计算一次抓取运行的归属日期键：运行日减去上游延迟
func EffectiveStamp(runTime time.Time) string {
	return FormatStamp(runTime.AddDate(0, 0, -reportingLagDays))
}
