package parsenum

import (
	"fmt"
	"math"
	"strings"
)

// Reporting selects how much detail error messages carry.
type Reporting uint8

const (
	ReportNormal Reporting = iota
	ReportTerse
	ReportDetailed
)

var reportingNames = map[Reporting]string{
	ReportNormal:   "normal",
	ReportTerse:    "terse",
	ReportDetailed: "detailed",
}

func (r Reporting) String() string {
	if s, ok := reportingNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Reporting(%d)", uint8(r))
}

// ParseReporting maps a configuration string to a Reporting level.
func ParseReporting(s string) (Reporting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return ReportNormal, nil
	case "terse":
		return ReportTerse, nil
	case "detailed":
		return ReportDetailed, nil
	default:
		return ReportNormal, fmt.Errorf("unknown reporting level %q (want terse, normal or detailed)", s)
	}
}

// Config tunes the parsers. The zero value is a 64-bit build with floats and
// complex numbers enabled and normal error reporting.
type Config struct {
	// SmallIntBits is the width of the inline integer range, sign included.
	// 0 means 63, the tagged-pointer range of a 64-bit runtime.
	SmallIntBits   int
	DisableFloat   bool
	DisableComplex bool
	Reporting      Reporting
}

const (
	defaultSmallIntBits = 63
	minSmallIntBits     = 8
	maxSmallIntBits     = 64
)

// Validate reports configuration values the parsers would have to clamp.
func (c Config) Validate() error {
	if c.SmallIntBits != 0 && (c.SmallIntBits < minSmallIntBits || c.SmallIntBits > maxSmallIntBits) {
		return fmt.Errorf("small_int_bits must be between %d and %d, got %d", minSmallIntBits, maxSmallIntBits, c.SmallIntBits)
	}
	if _, ok := reportingNames[c.Reporting]; !ok {
		return fmt.Errorf("invalid reporting level %d", c.Reporting)
	}
	return nil
}

func (c Config) smallBits() int {
	switch {
	case c.SmallIntBits == 0:
		return defaultSmallIntBits
	case c.SmallIntBits < minSmallIntBits:
		return minSmallIntBits
	case c.SmallIntBits > maxSmallIntBits:
		return maxSmallIntBits
	}
	return c.SmallIntBits
}

// SmallIntRange returns the inclusive bounds of the inline integer range.
func (c Config) SmallIntRange() (lo, hi int64) {
	b := c.smallBits()
	if b == maxSmallIntBits {
		return math.MinInt64, math.MaxInt64
	}
	hi = int64(1)<<(b-1) - 1
	return -hi - 1, hi
}
