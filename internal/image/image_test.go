package image

import "testing"

const (
	base  = "https://cdn.example/u/"
	valid = "5/12/3fa85f64-5717-4562-b3fc-2c963f66afa6.png"
)

// TestApply_Normal 测试普通尺寸图片
func TestApply_Normal(t *testing.T) {
	img := func(classes string) string {
		return `<img class="` + classes + `" src="` + base + valid + `">`
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "center",
			input: "[img]" + valid + "[/img]",
			want:  img("stylized-image image-center"),
		},
		{
			name:  "left with whitespace",
			input: "[img-left]  " + valid + " [/img-left]",
			want:  img("stylized-image image-left"),
		},
		{
			name:  "right upper case tag",
			input: "[IMG-RIGHT]" + valid + "[/IMG-RIGHT]",
			want:  img("stylized-image image-right"),
		},
		{
			name:  "own line trims breaks",
			input: "a<br>[img]" + valid + "[/img]<br>b",
			want:  "a" + img("stylized-image image-center") + "b",
		},
		{
			name:  "invalid on own line",
			input: "a<br>[img]bad-path[/img]<br>b",
			want:  "a<br>b",
		},
		{
			name:  "invalid inline",
			input: "a[img]bad[/img]b",
			want:  "ab",
		},
		{
			name:  "invalid at start",
			input: "[img]bad[/img]<br>b",
			want:  "b",
		},
		{
			name:  "attribute injection attempt",
			input: `[img]5/12/x&quot; onerror=&quot;alert(1).png[/img]`,
			want:  "",
		},
		{
			name:  "two images",
			input: "[img]" + valid + "[/img][img-left]" + valid + "[/img-left]",
			want:  img("stylized-image image-center") + img("stylized-image image-left"),
		},
		{
			name:  "big tag ignored",
			input: "[bigimg]" + valid + "[/bigimg]",
			want:  "[bigimg]" + valid + "[/bigimg]",
		},
		{
			name:  "unclosed",
			input: "[img]" + valid,
			want:  "[img]" + valid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.input, Normal, base, 0)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply(%q) =\n  %q\nwant\n  %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestApply_Big 测试大图
func TestApply_Big(t *testing.T) {
	input := "[bigimg-left]" + valid + "[/bigimg-left]<br>[bigimg]nope[/bigimg]"
	want := `<img class="stylized-image image-big image-left" src="` + base + valid + `">`

	got, err := Apply(input, Big, base, 0)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}
