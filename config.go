package stylize

import (
	"fmt"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/riverfjs/stylize-go/internal/types"
)

// 导出类型别名
type RenderConfig = types.RenderConfig

// EnvPrefix 是 LoadConfig 读取的环境变量前缀，例如 STYLIZE_ASSET_BASE_URL
const EnvPrefix = "STYLIZE_"

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
//
// 返回的指针是共享的，不要修改；需要调整时使用 Clone 或 Option。
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// LoadConfig 按 默认值 → TOML 文件 → 环境变量 的顺序加载配置
//
// path 为空时跳过文件。
func LoadConfig(path string) (*RenderConfig, error) {
	k := koanf.New(".")

	defaults := types.DefaultRenderConfig()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"asset_base_url":  defaults.AssetBaseURL,
		"iteration_limit": defaults.IterationLimit,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg RenderConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}
