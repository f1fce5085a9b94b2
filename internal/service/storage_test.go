package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStorageSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"512B", 512},
		{"1KB", 1024},
		{"1.5KB", 1536},
		{"512MB", 512 * 1024 * 1024},
		{"5GB", 5 * 1024 * 1024 * 1024},
		{"10 MB", 10 * 1024 * 1024},
		{" 2GB ", 2 * 1024 * 1024 * 1024},
		{"1gb", 1024 * 1024 * 1024},
	}
	for _, tc := range cases {
		got, err := ParseStorageSize(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseStorageSizeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "  ", "10TB", "GB", "abc", "10XY"} {
		_, err := ParseStorageSize(in)
		assert.ErrorIs(t, err, ErrValidation, "input %q", in)
	}
}

func TestTenantFilePrefix(t *testing.T) {
	assert.Equal(t, "7_", TenantFilePrefix(7))
	assert.Equal(t, "1234_", TenantFilePrefix(1234))
}

func TestCalculateUserStorage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3_a.png"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3_b.jpg"), make([]byte, 50), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "4_c.png"), make([]byte, 999), 0o644))
	// Directories with a matching prefix are skipped
	require.NoError(t, os.Mkdir(filepath.Join(dir, "3_dir"), 0o755))

	total, err := CalculateUserStorage(dir, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(150), total)
}

func TestCalculateUserStorageMissingDir(t *testing.T) {
	total, err := CalculateUserStorage(filepath.Join(t.TempDir(), "does-not-exist"), 1)
	require.NoError(t, err)
	assert.Zero(t, total)
}
