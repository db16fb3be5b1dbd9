package stylize

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger 全局日志记录器
//
// 默认只输出 warn 及以上级别。未通过 WithLogger 指定日志的 Stylizer 在每次调用时使用它。
var Logger = zerolog.New(os.Stderr).
	Level(zerolog.WarnLevel).
	With().
	Timestamp().
	Str("component", "stylize").
	Logger()

// SetLogger 设置自定义日志记录器
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}
