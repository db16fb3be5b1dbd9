package buffer

import "testing"

// TestFragment 测试片段拼接
func TestFragment(t *testing.T) {
	tests := []struct {
		name  string
		build func(f *Fragment)
		want  string
	}{
		{
			name:  "empty",
			build: func(f *Fragment) {},
			want:  "",
		},
		{
			name: "element with class",
			build: func(f *Fragment) {
				f.Element("div", "x", Class("message-name"))
			},
			want: `<div class="message-name">x</div>`,
		},
		{
			name: "void with attrs",
			build: func(f *Fragment) {
				f.Void("img", Class("a b"), Attr{Name: "src", Value: "/u/1.png"})
			},
			want: `<img class="a b" src="/u/1.png">`,
		},
		{
			name: "nested",
			build: func(f *Fragment) {
				f.Open("section").Element("span", "a").Write("b").Close("section")
			},
			want: "<section><span>a</span>b</section>",
		},
		{
			name: "empty writes skipped",
			build: func(f *Fragment) {
				f.Write("").Write("x").Write("")
			},
			want: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			tt.build(f)
			if got := f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if f.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", f.Len(), len(tt.want))
			}
		})
	}
}

// TestFragment_Reset 测试清空
func TestFragment_Reset(t *testing.T) {
	f := New()
	f.Write("abc")
	f.Reset()
	if f.String() != "" || f.Len() != 0 {
		t.Errorf("Reset() left %q", f.String())
	}
}
