package stylize

import "github.com/riverfjs/stylize-go/internal/fixpoint"

// ErrIterationLimit 表示某个阶段的不动点循环超过了迭代上限
//
// 只会由 Stylizer.Process 返回；Basic、MessagePreview、TextEntry 会记录日志并返回已处理的文本。
var ErrIterationLimit = fixpoint.ErrIterationLimit
