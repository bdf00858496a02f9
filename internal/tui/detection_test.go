package tui

import "testing"

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return tty }
	t.Cleanup(func() { isTerminal = orig })
}

func clearCI(t *testing.T) {
	t.Helper()
	for _, env := range ciEnvs {
		t.Setenv(env, "")
	}
	t.Setenv("NO_COLOR", "")
}

func TestWantsColor(t *testing.T) {
	tests := []struct {
		name string
		tty  bool
		env  string
		want bool
	}{
		{"terminal", true, "", true},
		{"not a terminal", false, "", false},
		{"ci", true, "GITHUB_ACTIONS", false},
		{"no color", true, "NO_COLOR", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCI(t)
			stubTerminal(t, tt.tty)
			if tt.env != "" {
				t.Setenv(tt.env, "1")
			}
			if got := WantsColor(); got != tt.want {
				t.Errorf("WantsColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTTY(t *testing.T) {
	stubTerminal(t, true)
	if !IsTTY() {
		t.Error("IsTTY() = false with stubbed terminal")
	}
	stubTerminal(t, false)
	if IsTTY() {
		t.Error("IsTTY() = true with stubbed non-terminal")
	}
}
