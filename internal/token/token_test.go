package token

import "testing"

// TestDice 测试骰子占位符
func TestDice(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[d6]", `<span class="dice dice-d6" aria-label="d6"></span>`},
		{"[d100]", `<span class="dice dice-d100" aria-label="d100"></span>`},
		{"roll [d6][d6]!", `roll <span class="dice dice-d6" aria-label="d6"></span><span class="dice dice-d6" aria-label="d6"></span>!`},
		{"[D6]", "[D6]"},
		{"[d20]", "[d20]"},
		{"[hr]", "[hr]"},
	}
	for _, tt := range tests {
		if got := Dice(tt.input); got != tt.want {
			t.Errorf("Dice(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// TestHorizontalRule 测试分隔线
func TestHorizontalRule(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a<br>[hr]<br>b", "a<br><hr><br>b"},
		{"[hr][hr]", "<hr><hr>"},
		{"[HR]", "[HR]"},
		{"[d6]", "[d6]"},
	}
	for _, tt := range tests {
		if got := HorizontalRule(tt.input); got != tt.want {
			t.Errorf("HorizontalRule(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
