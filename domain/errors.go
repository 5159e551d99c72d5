package domain

import "errors"

// 跨层通用错误，repository与usecase共享
var (
	ErrNotFound = errors.New("document not found")

	// ErrPersistence 存储不可用，是唯一允许终止整轮抓取的故障
	ErrPersistence = errors.New("persistence failure")
)
