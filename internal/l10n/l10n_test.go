package l10n

import "testing"

func TestUntranslated(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "plain", got: T("no such key"), expected: "no such key"},
		{name: "formatted", got: T("key %q not found in %s", "a", "x.cfg"), expected: `key "a" not found in x.cfg`},
		{name: "singular", got: TN("%d key", "%d keys", 1, 1), expected: "1 key"},
		{name: "plural", got: TN("%d key", "%d keys", 3, 3), expected: "3 keys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}
