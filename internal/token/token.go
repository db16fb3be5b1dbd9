package token

import "strings"

// 骰子占位符与分隔线的固定输出
const (
	D6       = "[d6]"
	D100     = "[d100]"
	Rule     = "[hr]"
	d6HTML   = `<span class="dice dice-d6" aria-label="d6"></span>`
	d100HTML = `<span class="dice dice-d100" aria-label="d100"></span>`
	ruleHTML = "<hr>"
)

// 字面替换，大小写敏感，单遍扫描，替换结果不会再次匹配
var (
	diceReplacer = strings.NewReplacer(D6, d6HTML, D100, d100HTML)
	ruleReplacer = strings.NewReplacer(Rule, ruleHTML)
)

// Dice 替换骰子占位符
func Dice(text string) string {
	return diceReplacer.Replace(text)
}

// HorizontalRule 替换分隔线
func HorizontalRule(text string) string {
	return ruleReplacer.Replace(text)
}
