package tags

import (
	"fmt"

	"github.com/riverfjs/stylize-go/internal/fixpoint"
	"github.com/riverfjs/stylize-go/internal/locate"
)

// Pair 定义一对字面标签及其 HTML 包装
type Pair struct {
	Start string
	End   string
	Open  string
	Close string
}

// Basic 是基础文字样式，按此顺序逐个处理到不动点
var Basic = []Pair{
	{Start: "[large]", End: "[/large]", Open: `<span class="text-large">`, Close: "</span>"},
	{Start: "[small]", End: "[/small]", Open: `<span class="text-small">`, Close: "</span>"},
	{Start: "[b]", End: "[/b]", Open: "<b>", Close: "</b>"},
	{Start: "[s]", End: "[/s]", Open: "<s>", Close: "</s>"},
	{Start: "[i]", End: "[/i]", Open: "<i>", Close: "</i>"},
	{Start: "[u]", End: "[/u]", Open: "<u>", Close: "</u>"},
}

// WrapOnce 替换一处最内层的标签对
func WrapOnce(text string, p Pair) (string, bool) {
	r := locate.Find(text, p.Start, p.End)
	if !r.Found {
		return text, false
	}
	return r.Before + p.Open + r.Inner + p.Close + r.After, true
}

// WrapAll 反复替换直到没有该标签对
func WrapAll(text string, p Pair, limit int) (string, error) {
	return fixpoint.Run(text, limit, func(s string) (string, bool) {
		return WrapOnce(s, p)
	})
}

// Apply 依次处理 pairs 中的每一对
func Apply(text string, pairs []Pair, limit int) (string, error) {
	for _, p := range pairs {
		var err error
		text, err = WrapAll(text, p, limit)
		if err != nil {
			return text, fmt.Errorf("%s: %w", p.Start, err)
		}
	}
	return text, nil
}
