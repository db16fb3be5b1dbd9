package escape

import "strings"

// htmlReplacer 按固定顺序替换六个 HTML 敏感字符
//
// & 必须最先处理，否则后续生成的实体会被再次转义。strings.NewReplacer
// 单遍扫描输入，替换结果不会被重新匹配，顺序与逐个替换等价。
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"'", "&#39;",
	"`", "&#96;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// lineBreakReplacer 将三种换行写法统一为 <br>
var lineBreakReplacer = strings.NewReplacer(
	"\r\n", "<br>",
	"\r", "<br>",
	"\n", "<br>",
)

// HTML 转义 & ' ` " < >，不做其他变换
//
// 只能在任何标签处理之前调用一次；转换器输出的 < > 是真实标记，不能再次转义。
func HTML(text string) string {
	return htmlReplacer.Replace(text)
}

// LineBreaks 将换行符替换为 <br>
//
// 必须在 HTML 之后调用，否则生成的 <br> 会被转义。
func LineBreaks(text string) string {
	return lineBreakReplacer.Replace(text)
}
