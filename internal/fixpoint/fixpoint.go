package fixpoint

import (
	"errors"
	"fmt"
)

// ErrIterationLimit 表示不动点循环超过了迭代上限
//
// 每次成功的替换都会消耗一个起始标签，正常情况下不可能触发；
// 触发即说明某个转换器破坏了这一性质。
var ErrIterationLimit = errors.New("fixpoint: iteration limit exceeded")

// Step 对文本做一次替换，没有可替换内容时返回 false
type Step func(text string) (string, bool)

// Limit 返回输入对应的默认迭代上限
func Limit(text string) int {
	return len(text) + 1
}

// Run 反复应用 step 直到它报告没有匹配
//
// limit <= 0 时使用 Limit(text)。超过上限时返回当时的文本和 ErrIterationLimit。
func Run(text string, limit int, step Step) (string, error) {
	if limit <= 0 {
		limit = Limit(text)
	}
	for i := 0; ; i++ {
		next, ok := step(text)
		if !ok {
			return text, nil
		}
		if i >= limit {
			return text, fmt.Errorf("%w after %d steps", ErrIterationLimit, limit)
		}
		text = next
	}
}
