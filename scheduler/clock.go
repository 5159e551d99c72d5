package scheduler

import "time"

// Clock 提供当前时间，测试中注入假时钟以固定归属日期
type Clock interface {
	Now() time.Time
}

// RealClock 使用系统时间
type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// MockClock 测试用固定时钟
type MockClock struct {
	MockTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.MockTime
}
