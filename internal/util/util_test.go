package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "empty", input: "", expected: 0},
		{name: "plain number", input: "512", expected: 512},
		{name: "bytes suffix", input: "64B", expected: 64},
		{name: "kilobytes", input: "100KB", expected: 100 * 1024},
		{name: "megabytes lowercase with space", input: " 5 mb ", expected: 5 * 1024 * 1024},
		{name: "gigabytes", input: "1GB", expected: 1 << 30},
		{name: "garbage", input: "lots", wantErr: true},
		{name: "negative", input: "-1KB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBytes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBytes(%q) expected error", tt.input)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseBytes(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Fatalf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCalculateChecksum(t *testing.T) {
	t.Parallel()

	got, err := CalculateChecksum(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("CalculateChecksum unexpected error: %v", err)
	}

	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("CalculateChecksum(abc) = %s, want %s", got, want)
	}
}

func TestCalculateFileChecksum(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte("abc"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := CalculateFileChecksum(path)
	if err != nil {
		t.Fatalf("CalculateFileChecksum unexpected error: %v", err)
	}

	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("CalculateFileChecksum = %s, want %s", got, want)
	}

	if _, err := CalculateFileChecksum(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("CalculateFileChecksum on a missing file should fail")
	}
}
