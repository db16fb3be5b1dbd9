package escape

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark/util"
)

// decode 用 goldmark 的实体解析还原转义结果
func decode(s string) string {
	b := util.ResolveNumericReferences([]byte(s))
	b = util.ResolveEntityNames(b)
	return string(b)
}

// TestHTML 测试六个字符的转义
func TestHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "ampersand", input: "a&b", want: "a&amp;b"},
		{name: "single quote", input: "it's", want: "it&#39;s"},
		{name: "backtick", input: "`x`", want: "&#96;x&#96;"},
		{name: "double quote", input: `"q"`, want: "&quot;q&quot;"},
		{name: "tags", input: "<script>", want: "&lt;script&gt;"},
		{name: "existing entity re-escaped", input: "&lt;", want: "&amp;lt;"},
		{name: "brackets untouched", input: "[b]x[/b]", want: "[b]x[/b]"},
		{name: "newline untouched", input: "a\nb", want: "a\nb"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTML(tt.input); got != tt.want {
				t.Errorf("HTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestHTML_RoundTrip 测试转义后不含原始字符且解码可还原
func TestHTML_RoundTrip(t *testing.T) {
	inputs := []string{
		`<img src="x" onerror='alert(1)'>`,
		"a & b < c > d",
		"`code` & \"quote\"",
		"&amp; already escaped &#39;",
		"猫 <ねこ> & 'いぬ'",
	}

	for _, input := range inputs {
		got := HTML(input)
		if strings.ContainsAny(got, "'`\"<>") {
			t.Errorf("HTML(%q) = %q, still contains raw characters", input, got)
		}
		if back := decode(got); back != input {
			t.Errorf("decode(HTML(%q)) = %q, want original", input, back)
		}
	}
}

// TestLineBreaks 测试换行替换
func TestLineBreaks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a\nb", "a<br>b"},
		{"a\r\nb", "a<br>b"},
		{"a\rb", "a<br>b"},
		{"\n\n", "<br><br>"},
		{"none", "none"},
	}

	for _, tt := range tests {
		if got := LineBreaks(tt.input); got != tt.want {
			t.Errorf("LineBreaks(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
