// Package occupancy classifies how full an event is from its capacity and
// current enrollment count.
package occupancy

import (
	"errors"
	"fmt"
)

// Bucket is how full an event is.
type Bucket int

const (
	LTEHalf Bucket = iota // at most half of the places taken
	GTHalf                // more than half taken, or over-enrolled
	SoldOut               // enrolled equals capacity
)

// ErrUnknownBucket is returned by ParseBucket for values outside 0, 1, 2.
var ErrUnknownBucket = errors.New("unknown occupancy bucket")

func (b Bucket) String() string {
	switch b {
	case LTEHalf:
		return "LTE_HALF"
	case GTHalf:
		return "GT_HALF"
	case SoldOut:
		return "SOLD_OUT"
	}
	return fmt.Sprintf("Bucket(%d)", int(b))
}

// FilterValue is the value of the event_occupancy admin filter parameter.
func (b Bucket) FilterValue() string {
	return fmt.Sprintf("%d", int(b))
}

// ParseBucket reads an event_occupancy filter value.
func ParseBucket(v string) (Bucket, error) {
	for b := range Predicates {
		if b.FilterValue() == v {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBucket, v)
}

// Classify returns the bucket for capacity and enrolled.
// It is SoldOut only when enrolled equals capacity exactly, so an
// over-enrolled event lands in GTHalf.
func Classify(capacity, enrolled int) Bucket {
	switch {
	case enrolled == capacity:
		return SoldOut
	case float64(enrolled) <= float64(capacity)/2:
		return LTEHalf
	default:
		return GTHalf
	}
}

// PlacesLeft is negative when the event is over-enrolled.
func PlacesLeft(capacity, enrolled int) int {
	return capacity - enrolled
}

// Percent is the truncated fill percentage, 0 for a zero capacity.
func Percent(capacity, enrolled int) int {
	if capacity == 0 {
		return 0
	}
	return int(float64(enrolled) / float64(capacity) * 100)
}

// Label renders places left together with the bucket, e.g. "4 (> 50%)".
func Label(capacity, enrolled int) string {
	left := PlacesLeft(capacity, enrolled)
	switch Classify(capacity, enrolled) {
	case SoldOut:
		return "0 (sold out)"
	case LTEHalf:
		return fmt.Sprintf("%d (<= 50%%)", left)
	default:
		return fmt.Sprintf("%d (> 50%%)", left)
	}
}

// Predicate reports whether an event with the given counts is in a bucket.
type Predicate func(capacity, enrolled int) bool

// Predicates holds the filter predicate of every bucket.
var Predicates = map[Bucket]Predicate{
	LTEHalf: func(capacity, enrolled int) bool { return Classify(capacity, enrolled) == LTEHalf },
	GTHalf:  func(capacity, enrolled int) bool { return Classify(capacity, enrolled) == GTHalf },
	SoldOut: func(capacity, enrolled int) bool { return Classify(capacity, enrolled) == SoldOut },
}

// Filter keeps the items whose capacity and enrollment satisfy the bucket's
// predicate. Order is preserved.
func Filter[T any](items []T, b Bucket, capacity func(T) int, enrolled func(T) int) []T {
	pred, ok := Predicates[b]
	if !ok {
		return nil
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(capacity(it), enrolled(it)) {
			out = append(out, it)
		}
	}
	return out
}
