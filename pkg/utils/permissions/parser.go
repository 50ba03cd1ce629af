// Package permissions holds the file modes used for generated icon sets and
// parses user-supplied octal modes.
package permissions

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Generated assets are meant to be committed into app projects, so they are
// world-readable.
const (
	DefaultFilePerms = 0o644
	DefaultDirPerms  = 0o755
)

// ParseOctalString parses an octal permission string.
// Handles formats like "644", "0644", "0o644". An empty string yields
// DefaultFilePerms.
func ParseOctalString(s string) (os.FileMode, error) {
	if s == "" {
		return DefaultFilePerms, nil
	}

	trimmed := strings.TrimPrefix(s, "0o")
	trimmed = strings.TrimPrefix(trimmed, "0")
	if trimmed == "" {
		return 0, nil
	}

	val, err := strconv.ParseUint(trimmed, 8, 32)
	if err != nil {
		return DefaultFilePerms, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > 0o777 {
		return DefaultFilePerms, fmt.Errorf("invalid permission string %q: out of range", s)
	}

	return os.FileMode(val), nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(perm os.FileMode) string {
	return fmt.Sprintf("0%o", uint32(perm.Perm()))
}

// DirFor derives a directory mode from a file mode by adding the execute bit
// wherever read is granted.
func DirFor(perm os.FileMode) os.FileMode {
	p := perm.Perm()
	if p&0o400 != 0 {
		p |= 0o100
	}
	if p&0o040 != 0 {
		p |= 0o010
	}
	if p&0o004 != 0 {
		p |= 0o001
	}
	return p
}
