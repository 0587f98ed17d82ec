// Package sizeunit converts raw byte magnitudes into caller-selected
// decimal (powers of 1000) or binary (powers of 1024) units.
package sizeunit

import (
	"fmt"
	"strings"
)

// Unit is a byte-scaling specifier. The zero value is Bytes.
type Unit int

const (
	Bytes Unit = iota
	KB
	KiB
	MB
	MiB
	GB
	GiB
	TB
	TiB
)

// ErrInvalid reports a unit string outside the accepted set.
var ErrInvalid = fmt.Errorf("invalid size unit")

var scales = [...]float64{
	Bytes: 1,
	KB:    1_000,
	KiB:   1_024,
	MB:    1_000_000,
	MiB:   1_048_576,
	GB:    1_000_000_000,
	GiB:   1_073_741_824,
	TB:    1_000_000_000_000,
	TiB:   1_099_511_627_776,
}

var names = [...]string{
	Bytes: "bytes",
	KB:    "KB",
	KiB:   "KiB",
	MB:    "MB",
	MiB:   "MiB",
	GB:    "GB",
	GiB:   "GiB",
	TB:    "TB",
	TiB:   "TiB",
}

// Parse matches s case-insensitively against the accepted unit set.
// The empty string and "b" are aliases for bytes.
func Parse(s string) (Unit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "B", "BYTES":
		return Bytes, nil
	case "KB":
		return KB, nil
	case "KIB":
		return KiB, nil
	case "MB":
		return MB, nil
	case "MIB":
		return MiB, nil
	case "GB":
		return GB, nil
	case "GIB":
		return GiB, nil
	case "TB":
		return TB, nil
	case "TIB":
		return TiB, nil
	}
	return Bytes, fmt.Errorf("%w: %q", ErrInvalid, s)
}

// Scale returns the number of bytes in one u.
func (u Unit) Scale() float64 {
	return scales[u]
}

// Convert scales a raw byte count down to u.
func (u Unit) Convert(bytes uint64) float64 {
	return float64(bytes) / scales[u]
}

// String returns the canonical spelling ("bytes", "KB", "KiB", ...).
func (u Unit) String() string {
	return names[u]
}
