package utils

import (
	"strconv"
)

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
	tb = 1 << 40
)

// FmtMemory renders a byte count as a compound human-readable string,
// e.g. 1536 -> "1KB 512B".
func FmtMemory(bytes uintptr) string {
	b := int(bytes)
	if b < kb {
		return strconv.Itoa(b) + "B"
	}

	units := []struct {
		size int
		name string
	}{
		{tb, "TB"},
		{gb, "GB"},
		{mb, "MB"},
		{kb, "KB"},
	}

	out := ""
	started := false
	for _, u := range units {
		if !started && b < u.size {
			continue
		}
		started = true
		if out != "" {
			out += " "
		}
		out += strconv.Itoa(b/u.size) + u.name
		b %= u.size
	}
	if out != "" {
		out += " "
	}
	return out + strconv.Itoa(b) + "B"
}
