package stylize

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Mode 选择渲染管道
type Mode int

const (
	// ModeBasic 基础样式、颜色、注音、普通图片
	ModeBasic Mode = iota
	// ModeMessagePreview 在基础之上替换骰子占位符
	ModeMessagePreview
	// ModeTextEntry 在基础之上处理分隔线、大图和消息块
	ModeTextEntry
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeBasic:
		return "basic"
	case ModeMessagePreview:
		return "preview"
	case ModeTextEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// ParseMode 解析模式名，接受 String 的输出
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return ModeBasic, nil
	case "preview", "message", "message-preview":
		return ModeMessagePreview, nil
	case "entry", "text", "text-entry":
		return ModeTextEntry, nil
	}
	return ModeBasic, fmt.Errorf("unknown mode %q", s)
}

// Stylizer 绑定一份配置的渲染器，可并发使用
type Stylizer struct {
	config *RenderConfig
	logger *zerolog.Logger
}

// New 创建 Stylizer
func New(opts ...Option) *Stylizer {
	o := applyOptions(opts...)
	return &Stylizer{
		config: o.Config,
		logger: o.Logger,
	}
}

// Config 返回配置副本
func (s *Stylizer) Config() *RenderConfig {
	return s.config.Clone()
}

func (s *Stylizer) log() *zerolog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return &Logger
}

// Process 按 mode 运行管道
//
// 某个阶段超过迭代上限时停止，返回当时的文本和包装了 ErrIterationLimit 的错误。
func (s *Stylizer) Process(mode Mode, text string) (string, error) {
	logger := s.log()
	for _, st := range stagesFor(mode) {
		out, err := st.run(s.config, text)
		if err != nil {
			return out, fmt.Errorf("%s stage: %w", st.name, err)
		}
		if e := logger.Debug(); e.Enabled() {
			e.Str("mode", mode.String()).
				Str("stage", st.name).
				Bool("changed", out != text).
				Msg("stage done")
		}
		text = out
	}
	return text, nil
}

// Render 按 mode 渲染，内部错误只记录日志
func (s *Stylizer) Render(mode Mode, text string) string {
	out, err := s.Process(mode, text)
	if err != nil {
		s.log().Error().
			Err(err).
			Str("mode", mode.String()).
			Int("input_len", len(text)).
			Msg("render stopped early")
	}
	return out
}

// Basic 渲染基础样式：转义、文字样式、颜色、注音、普通图片
func (s *Stylizer) Basic(text string) string {
	return s.Render(ModeBasic, text)
}

// MessagePreview 渲染聊天消息：基础样式 + 骰子占位符
func (s *Stylizer) MessagePreview(text string) string {
	return s.Render(ModeMessagePreview, text)
}

// TextEntry 渲染资料/日记：基础样式 + 分隔线 + 大图 + 消息块
func (s *Stylizer) TextEntry(text string) string {
	return s.Render(ModeTextEntry, text)
}
