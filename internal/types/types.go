package types

// RenderConfig 渲染配置
type RenderConfig struct {
	// AssetBaseURL 原样拼接在每个合法资源路径之前
	AssetBaseURL string `koanf:"asset_base_url"`
	// IterationLimit 单个不动点循环的最大替换次数，<= 0 表示按输入长度计算
	IterationLimit int `koanf:"iteration_limit"`
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		AssetBaseURL:   "/",
		IterationLimit: 0,
	}
}

// Clone 返回配置副本
func (c *RenderConfig) Clone() *RenderConfig {
	if c == nil {
		return DefaultRenderConfig()
	}
	cp := *c
	return &cp
}
