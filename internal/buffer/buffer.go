package buffer

// Attr 是一个 HTML 属性
//
// Value 原样写出，调用方负责保证其中不含未转义的引号。
type Attr struct {
	Name  string
	Value string
}

// Class 构造 class 属性
func Class(value string) Attr {
	return Attr{Name: "class", Value: value}
}

// Fragment 按顺序累积 HTML 片段
type Fragment struct {
	parts []string
}

// New creates a new Fragment.
func New() *Fragment {
	return &Fragment{
		parts: make([]string, 0, 8),
	}
}

// Write appends raw markup or already-escaped text.
func (f *Fragment) Write(s string) *Fragment {
	if s != "" {
		f.parts = append(f.parts, s)
	}
	return f
}

// Open 写出起始标签
func (f *Fragment) Open(tag string, attrs ...Attr) *Fragment {
	f.parts = append(f.parts, startTag(tag, attrs))
	return f
}

// Close 写出结束标签
func (f *Fragment) Close(tag string) *Fragment {
	f.parts = append(f.parts, "</"+tag+">")
	return f
}

// Void 写出无内容元素，如 <img>、<hr>
func (f *Fragment) Void(tag string, attrs ...Attr) *Fragment {
	return f.Open(tag, attrs...)
}

// Element 写出 <tag attrs>inner</tag>
func (f *Fragment) Element(tag, inner string, attrs ...Attr) *Fragment {
	return f.Open(tag, attrs...).Write(inner).Close(tag)
}

// Len returns the byte length of the accumulated markup.
func (f *Fragment) Len() int {
	total := 0
	for _, p := range f.parts {
		total += len(p)
	}
	return total
}

// String returns the accumulated markup.
func (f *Fragment) String() string {
	if len(f.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, f.Len())
	for _, p := range f.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the fragment.
func (f *Fragment) Reset() {
	f.parts = f.parts[:0]
}

func startTag(tag string, attrs []Attr) string {
	n := len(tag) + 2
	for _, a := range attrs {
		n += len(a.Name) + len(a.Value) + 4
	}
	b := make([]byte, 0, n)
	b = append(b, '<')
	b = append(b, tag...)
	for _, a := range attrs {
		b = append(b, ' ')
		b = append(b, a.Name...)
		b = append(b, '=', '"')
		b = append(b, a.Value...)
		b = append(b, '"')
	}
	b = append(b, '>')
	return string(b)
}
