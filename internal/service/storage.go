package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseStorageSize converts a size string like "5GB" or "512 MB" into
// bytes. Units follow the fixed B/KB/MB/GB table, powers of 1024.
func ParseStorageSize(sizeString string) (int64, error) {
	trimmed := strings.TrimSpace(sizeString)
	if trimmed == "" {
		return 0, validationf("empty storage size")
	}

	numEnd := 0
	for numEnd < len(trimmed) && (trimmed[numEnd] == '.' || (trimmed[numEnd] >= '0' && trimmed[numEnd] <= '9')) {
		numEnd++
	}
	size, err := strconv.ParseFloat(trimmed[:numEnd], 64)
	if err != nil {
		return 0, validationf("invalid storage size %q", sizeString)
	}

	unit := strings.ToUpper(strings.TrimSpace(trimmed[numEnd:]))
	multipliers := map[string]int64{
		"B":  1,
		"KB": 1024,
		"MB": 1024 * 1024,
		"GB": 1024 * 1024 * 1024,
	}
	multiplier, ok := multipliers[unit]
	if !ok {
		return 0, validationf("unknown storage unit %q", unit)
	}
	return int64(size * float64(multiplier)), nil
}

// TenantFilePrefix is the naming convention for uploaded files: every
// file a tenant owns starts with "<userID>_".
func TenantFilePrefix(userID uint) string {
	return fmt.Sprintf("%d_", userID)
}

// CalculateUserStorage sums the sizes of every file in uploadDir that
// carries the tenant's prefix. Best effort: concurrent uploads may
// change the total between the check and the write.
func CalculateUserStorage(uploadDir string, userID uint) (int64, error) {
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	prefix := TenantFilePrefix(userID)
	var total int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := os.Stat(filepath.Join(uploadDir, entry.Name()))
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}
