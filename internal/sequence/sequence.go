// Package sequence assigns unique sequence numbers to entry lists.
package sequence

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/yic95/expense-input-format/internal/entry"
)

// ErrMalformedSeq is returned when an entry carries a sequence number
// that is not a decimal integer.
var ErrMalformedSeq = errors.New("malformed sequence number")

// Assign fills in sequence numbers for entries, mutating them in place.
//
// With overwrite false, existing numbers at or above start are reserved
// and kept; every entry without a number gets the lowest unreserved
// candidate, counting up from start. With overwrite true, every entry is
// renumbered start, start+1, ... in list order regardless of prior values.
//
// After a nil return every entry has a non-empty Seq and the values
// assigned in this call are unique against each other and against the
// reserved set. Pre-existing numbers below start are left untouched and
// are not protected against collision.
//
// A non-empty Seq that does not parse as an integer is a hard error; the
// list is left unmodified in that case.
func Assign(entries []entry.Entry, start int, overwrite bool) error {
	reserved := make(map[int]struct{})
	if !overwrite {
		for i := range entries {
			if entries[i].Seq == "" {
				continue
			}
			n, err := strconv.Atoi(entries[i].Seq)
			if err != nil {
				return fmt.Errorf("%w: entry %d has seq %q", ErrMalformedSeq, i, entries[i].Seq)
			}
			if n >= start {
				reserved[n] = struct{}{}
			}
		}
	}

	next := start
	for i := range entries {
		if !overwrite && entries[i].Seq != "" {
			continue
		}
		for {
			if _, taken := reserved[next]; !taken {
				break
			}
			next++
		}
		entries[i].Seq = strconv.Itoa(next)
		next++
	}
	return nil
}
