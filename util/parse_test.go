package util

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		def  int64
		want int64
	}{
		{"25MB", 0, 25 << 20},
		{"5MB", 0, 5 << 20},
		{"50MB", 0, 50 << 20},
		{"512KB", 0, 512 << 10},
		{"1GB", 0, 1 << 30},
		{"1024", 0, 1024},
		{" 25mb ", 0, 25 << 20},
		{"", 1 << 20, 1 << 20},
		{"unbounded", 42, 42},
		{"MB", 42, 42},
	}
	for _, tt := range tests {
		if got := ParseSize(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseSize(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in      string
		visible int
		want    string
	}{
		{"gsk_live_abcdef123456", 4, "gsk_***"},
		{"aai-0123456789", 4, "aai-***"},
		{"key", 4, "***"},
		{"", 2, "***"},
	}
	for _, tt := range tests {
		if got := MaskSecret(tt.in, tt.visible); got != tt.want {
			t.Errorf("MaskSecret(%q, %d) = %q, want %q", tt.in, tt.visible, got, tt.want)
		}
	}
}
