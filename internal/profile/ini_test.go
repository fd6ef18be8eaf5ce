package profile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/microutils/settings"
)

func openStore(t *testing.T, k Kind) *settings.Store {
	t.Helper()
	s, err := settings.Source{Dir: t.TempDir(), Name: "test.cfg", Defaults: k.Defaults()}.Open()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestMarshalINI(t *testing.T) {
	s := openStore(t, Window)
	s.Set("window.theme", "dark")
	s.Set("unrelated", "x")

	data, err := Window.MarshalINI(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "[window]\nwidth=800\nheight=600\ntheme=dark"
	if diff := cmp.Diff(expected, string(data)); diff != "" {
		t.Errorf("MarshalINI() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalINI(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		input       string
		expectError bool
		expected    map[string]string
	}{
		{
			name:  "partial section",
			kind:  Window,
			input: "# exported\n[window]\nwidth=1024\ntheme=dark\n",
			expected: map[string]string{
				"window.width":  "1024",
				"window.height": "600",
				"window.theme":  "dark",
			},
		},
		{
			name:        "missing section",
			kind:        Window,
			input:       "[other]\nkey=value\n",
			expectError: true,
		},
		{
			name:        "malformed document",
			kind:        Window,
			input:       "[window\n",
			expectError: true,
		},
		{
			name:        "plain has no layout",
			kind:        Plain,
			input:       "[window]\nwidth=1\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openStore(t, tt.kind)
			err := tt.kind.UnmarshalINI([]byte(tt.input), s)

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError {
				if diff := cmp.Diff(tt.expected, s.All()); diff != "" {
					t.Errorf("UnmarshalINI() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestINIRoundTrip(t *testing.T) {
	src := openStore(t, Client)
	src.Set("server.url", "https://example.com:9443/api")

	data, err := Client.MarshalINI(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dst, err := settings.Source{Dir: t.TempDir(), Name: "test.cfg"}.Open()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Client.UnmarshalINI(data, dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(src.All(), dst.All()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
