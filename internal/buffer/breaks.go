package buffer

import "strings"

// Break 是换行阶段生成的换行标记
const Break = "<br>"

// TrimBreakSuffix 去掉末尾紧邻的一个 <br>
func TrimBreakSuffix(s string) string {
	return strings.TrimSuffix(s, Break)
}

// TrimBreakPrefix 去掉开头紧邻的一个 <br>
func TrimBreakPrefix(s string) string {
	return strings.TrimPrefix(s, Break)
}

// Around 用 block 替换 before 与 after 之间的区域，并吸收两侧紧邻的 <br>
//
// 独占一行的块级元素不会留下空行。
func Around(before, block, after string) string {
	return TrimBreakSuffix(before) + block + TrimBreakPrefix(after)
}

// Collapse 删除 before 与 after 之间的区域，两侧的 <br> 合并为一个
//
// 区域位于文本开头或结尾时，紧邻的 <br> 直接去掉。
func Collapse(before, after string) string {
	switch {
	case before == "":
		return TrimBreakPrefix(after)
	case after == "":
		return TrimBreakSuffix(before)
	case strings.HasSuffix(before, Break) && strings.HasPrefix(after, Break):
		return before + after[len(Break):]
	default:
		return before + after
	}
}
