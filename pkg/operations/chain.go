package operations

import (
	"fmt"
	"strings"
)

// Named chains for parsing archive formats
var namedChains = map[string][]uint8{
	"tar":     {OP_TAR},
	"tar.gz":  {OP_TAR, OP_GZIP},
	"tar.bz2": {OP_TAR, OP_BZIP2},

	// Alternative names
	"tgz":  {OP_TAR, OP_GZIP},
	"tbz2": {OP_TAR, OP_BZIP2},
}

// canonicalNames maps a chain back to its preferred extension.
var canonicalNames = map[string]string{
	"01":    "tar",
	"01-10": "tar.gz",
	"01-13": "tar.bz2",
}

// ParseChain parses an archive format string ("tar.gz", "tbz2", ...) into
// its operation chain.
func ParseChain(format string) ([]uint8, error) {
	ops, ok := namedChains[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("unknown archive format: %q", format)
	}
	return append([]uint8(nil), ops...), nil
}

// ChainName returns the canonical extension for a chain, or the
// pipe-separated operation names when there is none.
func ChainName(ops []uint8) string {
	if name, ok := canonicalNames[chainKey(ops)]; ok {
		return name
	}
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = strings.ToLower(GetName(op))
	}
	return strings.Join(names, "|")
}

// FormatNames lists the canonical archive formats.
func FormatNames() []string {
	return []string{"tar", "tar.gz", "tar.bz2"}
}

func chainKey(ops []uint8) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = fmt.Sprintf("%02x", op)
	}
	return strings.Join(parts, "-")
}

// ApplyChain applies a chain of registered operations to data
func ApplyChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	for _, opID := range operations {
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

// ReverseChain reverses a chain of operations on data
func ReverseChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	// Apply operations in reverse order
	for i := len(operations) - 1; i >= 0; i-- {
		opID := operations[i]
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}
