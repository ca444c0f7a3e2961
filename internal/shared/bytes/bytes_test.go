package bytes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestChecksum_Stable returns the same digest for the same input.
func TestChecksum_Stable(t *testing.T) {
	a := []byte("vehicle photo")
	b := []byte("vehicle photo")

	require.Equal(t, Checksum(a), Checksum(b))
}

// TestChecksum_DetectsChange differs when a single byte changes.
func TestChecksum_DetectsChange(t *testing.T) {
	a := make([]byte, 100)
	b := make([]byte, 100)
	for i := range a {
		a[i] = byte(i % 256)
		b[i] = byte(i % 256)
	}
	require.Equal(t, Checksum(a), Checksum(b))

	b[50] = 255
	require.NotEqual(t, Checksum(a), Checksum(b))
}

// TestFmtMem_FormatsCorrectly verifies memory formatting for different sizes.
func TestFmtMem_FormatsCorrectly(t *testing.T) {
	tests := []struct {
		name     string
		bytes    uint64
		expected string
	}{
		{"bytes", 512, "512B"},
		{"kilobytes", 5 * 1024, "5KB 0B"},
		{"megabytes", 10 * 1024 * 1024, "10MB 0KB"},
		{"gigabytes", 2 * 1024 * 1024 * 1024, "2GB 0MB"},
		{"terabytes", 1 * 1024 * 1024 * 1024 * 1024, "1TB 0GB"},
		{"mixed KB", 1536, "1KB 512B"},
		{"mixed MB", 10*1024*1024 + 512*1024, "10MB 512KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FmtMem(tt.bytes))
		})
	}
}
