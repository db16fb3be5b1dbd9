// Package message 处理 [message]...[/message] 消息气泡块
//
// 块内按 <br> 分行：[name]...[/name] 行给出发言者名字，[icon]...[/icon] 行给出头像，
// 其余行组成正文。首尾的空行被去掉。
package message

import (
	"strings"

	"github.com/riverfjs/stylize-go/internal/asset"
	"github.com/riverfjs/stylize-go/internal/buffer"
	"github.com/riverfjs/stylize-go/internal/fixpoint"
	"github.com/riverfjs/stylize-go/internal/locate"
)

const (
	StartTag = "[message]"
	EndTag   = "[/message]"

	nameStart = "[name]"
	nameEnd   = "[/name]"
	iconStart = "[icon]"
	iconEnd   = "[/icon]"
)

// Block 是解析后的消息块
type Block struct {
	Icon    *asset.Path
	Name    string
	HasName bool
	Body    []string
}

// Parse 解析消息块内部内容
//
// 所有行都为空时返回 false，该区域保持原样。
func Parse(inner string) (Block, bool) {
	lines := strings.Split(inner, buffer.Break)

	leading := 0
	for leading < len(lines) && lines[leading] == "" {
		leading++
	}
	trailing := 0
	for trailing < len(lines) && lines[len(lines)-1-trailing] == "" {
		trailing++
	}
	if leading+trailing > len(lines) {
		return Block{}, false
	}
	lines = lines[leading : len(lines)-trailing]

	var b Block
	for _, line := range lines {
		if !b.HasName {
			if name, ok := enclosed(line, nameStart, nameEnd); ok {
				b.Name = name
				b.HasName = true
				continue
			}
		}
		if b.Icon == nil {
			if icon, ok := enclosed(line, iconStart, iconEnd); ok {
				if p, ok := asset.Parse(strings.TrimSpace(icon)); ok {
					b.Icon = &p
					continue
				}
			}
		}
		b.Body = append(b.Body, line)
	}
	return b, true
}

// enclosed 在 line 恰好为 start...end 时返回中间部分，大小写不敏感
func enclosed(line, start, end string) (string, bool) {
	if len(line) < len(start)+len(end) {
		return "", false
	}
	lower := locate.Lower(line)
	if !strings.HasPrefix(lower, start) || !strings.HasSuffix(lower, end) {
		return "", false
	}
	return line[len(start) : len(line)-len(end)], true
}

// IconFragment 生成头像区域
func IconFragment(icon *asset.Path, baseURL string) string {
	f := buffer.New().Open("div", buffer.Class("message-icon"))
	if icon != nil {
		f.Void("img", buffer.Class("message-icon-image"), buffer.Attr{Name: "src", Value: baseURL + icon.String()})
	} else {
		f.Element("div", "", buffer.Class("no-image"))
	}
	return f.Close("div").String()
}

// NameFragment 生成名字区域，没有名字时为空
func NameFragment(b Block) string {
	if !b.HasName {
		return ""
	}
	return buffer.New().Element("div", b.Name, buffer.Class("message-name")).String()
}

// BodyFragment 生成正文区域
func BodyFragment(body []string) string {
	return buffer.New().Element("div", strings.Join(body, buffer.Break), buffer.Class("message-body")).String()
}

// Render 生成完整的消息块
func Render(b Block, baseURL string) string {
	return buffer.New().
		Open("section", buffer.Class("message")).
		Write(IconFragment(b.Icon, baseURL)).
		Open("div", buffer.Class("message-content")).
		Write(NameFragment(b)).
		Write(BodyFragment(b.Body)).
		Close("div").
		Close("section").
		String()
}

// ReplaceOnce 替换一处消息块
func ReplaceOnce(text, baseURL string) (string, bool) {
	var block Block
	r := locate.FindFunc(text, StartTag, EndTag, func(r locate.Region) bool {
		var ok bool
		block, ok = Parse(r.Inner)
		return ok
	})
	if !r.Found {
		return text, false
	}
	return buffer.Around(r.Before, Render(block, baseURL), r.After), true
}

// Apply 将消息块处理到不动点
func Apply(text, baseURL string, limit int) (string, error) {
	return fixpoint.Run(text, limit, func(s string) (string, bool) {
		return ReplaceOnce(s, baseURL)
	})
}
