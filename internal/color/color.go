// Package color 处理 [#RRGGBB]...[/#RRGGBB] 颜色标签
//
// 标签字面量随颜色值变化，因此不能用固定标签的 locate.Find。每一轮从最后一个
// 起始标签向前尝试，只与同色的结束/起始标签比较；第一个可解析的候选被替换，
// 其余候选留到下一轮。不同颜色之间交叉时不做重新配对。
package color

import (
	"strings"

	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/stylize-go/internal/buffer"
	"github.com/riverfjs/stylize-go/internal/fixpoint"
	"github.com/riverfjs/stylize-go/internal/locate"
)

const (
	startPrefix = "[#"
	endPrefix   = "[/#"
	hexLen      = 6
)

// tagLen 是 [#RRGGBB] 的长度
const tagLen = len(startPrefix) + hexLen + 1

// candidate 是一个起始标签出现的位置
type candidate struct {
	offset int
	hex    string // 小写
}

// candidates 返回 lower 中所有 [#xxxxxx] 的位置，按出现顺序
func candidates(lower string) []candidate {
	var out []candidate
	for i := 0; i+tagLen <= len(lower); {
		j := strings.Index(lower[i:], startPrefix)
		if j < 0 {
			break
		}
		at := i + j
		if at+tagLen <= len(lower) && isHexTag(lower[at:at+tagLen]) {
			out = append(out, candidate{offset: at, hex: lower[at+2 : at+2+hexLen]})
		}
		i = at + 1
	}
	return out
}

func isHexTag(s string) bool {
	if s[len(s)-1] != ']' {
		return false
	}
	for k := len(startPrefix); k < len(startPrefix)+hexLen; k++ {
		if !util.IsHexDecimal(s[k]) {
			return false
		}
	}
	return true
}

// Span 生成颜色 span
func Span(hex, inner string) string {
	return buffer.New().
		Element("span", inner, buffer.Attr{Name: "style", Value: "color:#" + hex}).
		String()
}

// ReplaceOnce 替换一处颜色标签
func ReplaceOnce(text string) (string, bool) {
	lower := locate.Lower(text)
	cs := candidates(lower)
	for k := len(cs) - 1; k >= 0; k-- {
		c := cs[k]
		start := startPrefix + c.hex + "]"
		end := endPrefix + c.hex + "]"

		innerStart := c.offset + len(start)
		rest := lower[innerStart:]
		nextEnd := strings.Index(rest, end)
		if nextEnd < 0 {
			continue
		}
		if nextStart := strings.Index(rest, start); nextStart >= 0 && nextStart < nextEnd {
			continue
		}

		innerEnd := innerStart + nextEnd
		return text[:c.offset] + Span(c.hex, text[innerStart:innerEnd]) + text[innerEnd+len(end):], true
	}
	return text, false
}

// Apply 将颜色标签处理到不动点
func Apply(text string, limit int) (string, error) {
	return fixpoint.Run(text, limit, ReplaceOnce)
}
