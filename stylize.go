// Package stylize 将用户编写的方括号标记文本渲染为安全的 HTML 片段
//
// 用于聊天消息、角色资料、日记等场景。作者使用一组简单的方括号标签
// （粗体、斜体、尺寸、颜色、注音、图片、骰子、消息气泡）代替原始 HTML。
//
// 处理流程：
//   - 转义六个 HTML 敏感字符，换行转为 <br>
//   - 依次应用各类标签转换器，每类处理到不动点
//   - 图片与头像路径经过校验后才输出 <img>
//
// 主要 API：
//   - Basic(): 基础样式
//   - MessagePreview(): 聊天消息，额外处理骰子占位符
//   - TextEntry(): 资料/日记，额外处理分隔线、大图与消息块
//
// 示例：
//
//	html := stylize.MessagePreview("[b]你好[/b] [d6]")
//
//	s := stylize.New(stylize.WithAssetBaseURL("https://cdn.example.com/u/"))
//	html = s.TextEntry(profile)
//
// 所有函数对任意输入都返回结果，不会报错，可并发调用。
package stylize

import "sync"

var (
	defaultStylizer     *Stylizer
	defaultStylizerOnce sync.Once
)

func std() *Stylizer {
	defaultStylizerOnce.Do(func() {
		defaultStylizer = New()
	})
	return defaultStylizer
}

// Basic 使用默认配置渲染基础样式
func Basic(text string) string {
	return std().Basic(text)
}

// MessagePreview 使用默认配置渲染聊天消息
func MessagePreview(text string) string {
	return std().MessagePreview(text)
}

// TextEntry 使用默认配置渲染资料/日记
func TextEntry(text string) string {
	return std().TextEntry(text)
}
