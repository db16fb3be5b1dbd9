package ruby

import (
	"strings"

	"github.com/riverfjs/stylize-go/internal/buffer"
	"github.com/riverfjs/stylize-go/internal/fixpoint"
	"github.com/riverfjs/stylize-go/internal/locate"
)

// 整个注音区域从 [rt] 开始到 [/rb] 结束，中间用 [/rt][rb] 分隔正文与读音
const (
	StartTag  = "[rt]"
	EndTag    = "[/rb]"
	Separator = "[/rt][rb]"
)

var lowerSeparator = locate.Lower(Separator)

// split 按第一个分隔符切分，大小写不敏感
func split(inner string) (text, reading string, ok bool) {
	i := strings.Index(locate.Lower(inner), lowerSeparator)
	if i < 0 {
		return "", "", false
	}
	return inner[:i], inner[i+len(Separator):], true
}

// Markup 生成 <ruby> 元素
func Markup(text, reading string) string {
	return buffer.New().
		Open("ruby").
		Write(text).
		Element("rp", "(").
		Element("rt", reading).
		Element("rp", ")").
		Close("ruby").
		String()
}

// ReplaceOnce 替换一处注音；缺少分隔符的区域被跳过
func ReplaceOnce(text string) (string, bool) {
	r := locate.FindFunc(text, StartTag, EndTag, func(r locate.Region) bool {
		_, _, ok := split(r.Inner)
		return ok
	})
	if !r.Found {
		return text, false
	}
	base, reading, _ := split(r.Inner)
	return r.Before + Markup(base, reading) + r.After, true
}

// Apply 将注音处理到不动点
func Apply(text string, limit int) (string, error) {
	return fixpoint.Run(text, limit, ReplaceOnce)
}
