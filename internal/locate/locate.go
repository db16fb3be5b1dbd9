// Package locate 在可能不平衡的文本中查找一对字面标签
//
// 查找策略：从右向左尝试每个起始标签，选取第一个在下一个同名起始标签之前
// 就能遇到结束标签的候选。反复应用时，嵌套标签由内向外依次解析，无需构建树。
package locate

import "strings"

// Region 表示一次定位的结果
//
// Found 为 false 时其余字段为空。Start 是起始标签在原文中的字节偏移。
type Region struct {
	Before string
	Inner  string
	After  string
	Start  int
	Found  bool
}

// Accept 决定一个可解析的候选是否被采用
//
// 返回 false 时该候选被跳过，查找继续向左进行。
type Accept func(r Region) bool

// Lower 仅折叠 ASCII A-Z，保证结果与原文字节偏移一一对应
//
// strings.ToLower 会改变部分 Unicode 字符的字节长度，不能用于偏移计算。
func Lower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// Find 查找最内层可解析的 startTag...endTag 区域
func Find(text, startTag, endTag string) Region {
	return FindFunc(text, startTag, endTag, nil)
}

// FindFunc 与 Find 相同，但每个可解析候选需经 accept 确认
//
// accept 为 nil 时接受第一个可解析候选。
func FindFunc(text, startTag, endTag string, accept Accept) Region {
	if startTag == "" || endTag == "" {
		return Region{}
	}
	lower := Lower(text)
	start := Lower(startTag)
	end := Lower(endTag)

	sp := len(lower)
	for {
		idx := strings.LastIndex(lower[:sp], start)
		if idx < 0 {
			return Region{}
		}
		sp = idx

		innerStart := idx + len(start)
		rest := lower[innerStart:]
		nextEnd := strings.Index(rest, end)
		if nextEnd < 0 {
			continue
		}
		if nextStart := strings.Index(rest, start); nextStart >= 0 && nextStart < nextEnd {
			continue
		}

		innerEnd := innerStart + nextEnd
		r := Region{
			Before: text[:idx],
			Inner:  text[innerStart:innerEnd],
			After:  text[innerEnd+len(end):],
			Start:  idx,
			Found:  true,
		}
		if accept != nil && !accept(r) {
			continue
		}
		return r
	}
}
