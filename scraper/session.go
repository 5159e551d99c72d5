package scraper

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// session 封装一次性的 rod.Browser 实例（headless 模式）
// 每次抓取独立启停，不跨实体复用；Close 在任何退出路径上都必须执行
type session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func newSession() (*session, error) {
	l := launcher.New().Headless(true).NoSandbox(true)

	url, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect browser: %w", err)
	}

	return &session{
		browser:  browser,
		launcher: l,
	}, nil
}

// NewPage 创建新的浏览器页面
func (s *session) NewPage() (*rod.Page, error) {
	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Close 关闭浏览器并清理资源
func (s *session) Close() {
	if s.browser != nil {
		_ = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
	}
}
