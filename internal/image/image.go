package image

import (
	"fmt"
	"strings"

	"github.com/riverfjs/stylize-go/internal/asset"
	"github.com/riverfjs/stylize-go/internal/buffer"
	"github.com/riverfjs/stylize-go/internal/fixpoint"
	"github.com/riverfjs/stylize-go/internal/locate"
)

// Variant 是一种图片标签及其 CSS class
type Variant struct {
	Start   string
	End     string
	Classes string
}

// Normal 普通尺寸图片，所有管道都会处理
var Normal = []Variant{
	{Start: "[img]", End: "[/img]", Classes: "stylized-image image-center"},
	{Start: "[img-left]", End: "[/img-left]", Classes: "stylized-image image-left"},
	{Start: "[img-right]", End: "[/img-right]", Classes: "stylized-image image-right"},
}

// Big 大图，仅在个人资料/日记管道中处理
var Big = []Variant{
	{Start: "[bigimg]", End: "[/bigimg]", Classes: "stylized-image image-big image-center"},
	{Start: "[bigimg-left]", End: "[/bigimg-left]", Classes: "stylized-image image-big image-left"},
	{Start: "[bigimg-right]", End: "[/bigimg-right]", Classes: "stylized-image image-big image-right"},
}

// Tag 生成 <img> 元素
func Tag(classes, baseURL string, p asset.Path) string {
	return buffer.New().
		Void("img", buffer.Class(classes), buffer.Attr{Name: "src", Value: baseURL + p.String()}).
		String()
}

// ReplaceOnce 处理一处最内层的图片标签
//
// 路径合法时输出 <img>，否则连同内容一起删除。
func ReplaceOnce(text string, v Variant, baseURL string) (string, bool) {
	r := locate.Find(text, v.Start, v.End)
	if !r.Found {
		return text, false
	}
	p, ok := asset.Parse(strings.TrimSpace(r.Inner))
	if !ok {
		return buffer.Collapse(r.Before, r.After), true
	}
	return buffer.Around(r.Before, Tag(v.Classes, baseURL, p), r.After), true
}

// Apply 依次将每种图片标签处理到不动点
func Apply(text string, variants []Variant, baseURL string, limit int) (string, error) {
	for _, v := range variants {
		var err error
		text, err = fixpoint.Run(text, limit, func(s string) (string, bool) {
			return ReplaceOnce(s, v, baseURL)
		})
		if err != nil {
			return text, fmt.Errorf("%s: %w", v.Start, err)
		}
	}
	return text, nil
}
