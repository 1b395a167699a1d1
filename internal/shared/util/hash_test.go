package util

import (
	"io"
	"strings"
	"testing"
)

func TestDigestMatchesSHA256Hex(t *testing.T) {
	d := NewDigest()
	if _, err := io.Copy(d, strings.NewReader("%PDF-1.4 hello")); err != nil {
		t.Fatalf("copy: %v", err)
	}
	got := d.Hex()
	if got != SHA256Hex([]byte("%PDF-1.4 hello")) {
		t.Fatalf("streaming digest differs from one-shot digest: %s", got)
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
}

func TestLogFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "resume.pdf", want: "resume.pdf"},
		{in: " dir/sub\\cv.pdf ", want: "dir_sub_cv.pdf"},
		{in: "../../etc/passwd.pdf", want: "(invalid)"},
		{in: "   ", want: "(invalid)"},
	}
	for _, tt := range tests {
		if got := LogFileName(tt.in); got != tt.want {
			t.Fatalf("LogFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
