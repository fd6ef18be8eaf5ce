package settings

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line  string
		kind  lineKind
		key   string
		value string
	}{
		{line: "k=v", kind: lineData, key: "k", value: "v"},
		{line: "k=", kind: lineData, key: "k", value: ""},
		{line: "k=a=b", kind: lineData, key: "k", value: "a=b"},
		{line: " k = v ", kind: lineData, key: " k ", value: " v "},
		{line: "==x", kind: lineData, key: "=", value: "x"},
		{line: "url=http://host/#frag", kind: lineData, key: "url", value: "http://host/#frag"},
		{line: "", kind: lineOther},
		{line: " \t ", kind: lineOther},
		{line: "# comment", kind: lineOther},
		{line: "\t#indented", kind: lineOther},
		{line: "#k=v", kind: lineOther},
		{line: "justtext", kind: lineInvalid},
		{line: "=x", kind: lineInvalid},
		{line: "a#b", kind: lineOther},
		{line: "note # x", kind: lineOther},
		{line: "a#b=c", kind: lineData, key: "a#b", value: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, key, value := classify(tt.line)
			if kind != tt.kind {
				t.Fatalf("classify(%q) kind = %v, want %v", tt.line, kind, tt.kind)
			}
			if key != tt.key || value != tt.value {
				t.Errorf("classify(%q) = %q, %q, want %q, %q", tt.line, key, value, tt.key, tt.value)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "CRLF", input: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "mixed terminators", input: "a\r\nb\nc\rd", expected: []string{"a", "b", "c", "d"}},
		{name: "lone CR at end", input: "a\r", expected: []string{"a"}},
		{name: "single empty line", input: "\r\n", expected: []string{""}},
		{name: "empty lines kept", input: "a\n\n\nb\n", expected: []string{"a", "", "", "b"}},
		{name: "long line", input: "k=" + strings.Repeat("v", 3<<20) + "\r\nx=1", expected: []string{"k=" + strings.Repeat("v", 3<<20), "x=1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := readLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("readLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
