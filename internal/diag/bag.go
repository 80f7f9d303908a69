package diag

import (
	"cmp"
	"math"
	"slices"

	"fortio.org/safecast"

	"numlit/internal/source"
)

// Bag collects the diagnostics of one file, or of a whole run after
// MergeBags. It is not safe for concurrent use: each scan worker owns its bag.
type Bag struct {
	items   []Diagnostic
	max     uint16
	dropped int
}

// NewBag creates a bag that keeps at most max diagnostics; 0 or values past
// the uint16 range mean the maximum.
func NewBag(max int) *Bag {
	return &Bag{max: clampLimit(max)}
}

func clampLimit(n int) uint16 {
	limit, err := safecast.Conv[uint16](n)
	if err != nil || limit == 0 {
		return math.MaxUint16
	}
	return limit
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если лимит исчерпан; такие диагностики считает Dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16  { return b.max }
func (b *Bag) Dropped() int { return b.dropped }
func (b *Bag) Len() int     { return len(b.items) }

// HasErrors reports whether any kept diagnostic is an error. Dropped
// diagnostics do not count: a bag only drops once it is full.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

// Items возвращает срез диагностик только для чтения.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends other's diagnostics, growing the limit so nothing other
// kept is lost, and carries over its dropped count.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if total := len(b.items) + len(other.items); total > int(b.max) {
		b.max = clampLimit(total)
	}
	for _, d := range other.items {
		b.Add(d)
	}
	b.dropped += other.dropped
}

// Sort orders by file, start, end, severity (errors first), code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops repeats of the same code at the same span, keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
