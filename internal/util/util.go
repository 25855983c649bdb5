package util

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// CalculateChecksum calculates the SHA256 checksum of everything read from r.
func CalculateChecksum(r io.Reader) (string, error) {
	sha256Hash := sha256.New()

	if _, err := io.Copy(sha256Hash, r); err != nil {
		return "", errors.Wrap(err, "failed to calculate checksum")
	}

	return fmt.Sprintf("%x", sha256Hash.Sum(nil)), nil
}

// CalculateFileChecksum calculates the SHA256 checksum for a file.
func CalculateFileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return CalculateChecksum(file)
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// ParseBytes parses sizes such as "512", "100KB", "5MB" or "1GB" using 1024-based units.
// An empty string parses as zero.
func ParseBytes(s string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	if trimmed == "" {
		return 0, nil
	}

	multiplier := int64(1)
	for _, suffix := range []struct {
		unit string
		mult int64
	}{
		{unit: "GB", mult: 1 << 30},
		{unit: "MB", mult: 1 << 20},
		{unit: "KB", mult: 1 << 10},
		{unit: "B", mult: 1},
	} {
		if strings.HasSuffix(trimmed, suffix.unit) {
			trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, suffix.unit))
			multiplier = suffix.mult

			break
		}
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", s)
	}
	if n < 0 {
		return 0, errors.Errorf("invalid size %q: negative", s)
	}

	return n * multiplier, nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
