package stylize

import (
	"github.com/riverfjs/stylize-go/internal/color"
	"github.com/riverfjs/stylize-go/internal/escape"
	"github.com/riverfjs/stylize-go/internal/image"
	"github.com/riverfjs/stylize-go/internal/message"
	"github.com/riverfjs/stylize-go/internal/ruby"
	"github.com/riverfjs/stylize-go/internal/tags"
	"github.com/riverfjs/stylize-go/internal/token"
)

// stage 是管道中的一个步骤
type stage struct {
	name string
	run  func(cfg *RenderConfig, text string) (string, error)
}

// pure 包装不会失败的字面替换
func pure(f func(string) string) func(*RenderConfig, string) (string, error) {
	return func(_ *RenderConfig, text string) (string, error) {
		return f(text), nil
	}
}

var escapeStage = stage{name: "escape", run: pure(escape.HTML)}

var breakStage = stage{name: "line-breaks", run: pure(escape.LineBreaks)}

var styleStage = stage{name: "style", run: func(cfg *RenderConfig, text string) (string, error) {
	return tags.Apply(text, tags.Basic, cfg.IterationLimit)
}}

var colorStage = stage{name: "color", run: func(cfg *RenderConfig, text string) (string, error) {
	return color.Apply(text, cfg.IterationLimit)
}}

var rubyStage = stage{name: "ruby", run: func(cfg *RenderConfig, text string) (string, error) {
	return ruby.Apply(text, cfg.IterationLimit)
}}

var imageStage = stage{name: "image", run: func(cfg *RenderConfig, text string) (string, error) {
	return image.Apply(text, image.Normal, cfg.AssetBaseURL, cfg.IterationLimit)
}}

var diceStage = stage{name: "dice", run: pure(token.Dice)}

var ruleStage = stage{name: "horizontal-rule", run: pure(token.HorizontalRule)}

var bigImageStage = stage{name: "big-image", run: func(cfg *RenderConfig, text string) (string, error) {
	return image.Apply(text, image.Big, cfg.AssetBaseURL, cfg.IterationLimit)
}}

var messageStage = stage{name: "message", run: func(cfg *RenderConfig, text string) (string, error) {
	return message.Apply(text, cfg.AssetBaseURL, cfg.IterationLimit)
}}

// 三个管道的固定顺序
var (
	basicStages = []stage{
		escapeStage,
		breakStage,
		styleStage,
		colorStage,
		rubyStage,
		imageStage,
	}

	messagePreviewStages = concat(basicStages, diceStage)

	textEntryStages = concat(basicStages, ruleStage, bigImageStage, messageStage)
)

func concat(base []stage, more ...stage) []stage {
	out := make([]stage, 0, len(base)+len(more))
	out = append(out, base...)
	return append(out, more...)
}

// stagesFor 返回模式对应的管道
func stagesFor(mode Mode) []stage {
	switch mode {
	case ModeMessagePreview:
		return messagePreviewStages
	case ModeTextEntry:
		return textEntryStages
	default:
		return basicStages
	}
}
