// Package analytics derives the dashboard's aggregate figures from the booking and employee collections.
// Every function is pure: it reads the slices it is given and never retains them.
package analytics

import (
	"strconv"
	"strings"

	"github.com/fastygo/dashboard/domain"
)

// slotWidth is the length of every heatmap slot in hours.
const slotWidth = 2

var (
	// Slots are the heatmap rows in display order. They leave hours 4 through 13 uncovered.
	Slots = []string{"2pm", "4pm", "6pm", "8pm", "10pm", "12am", "2am"}
	// Days are the heatmap columns, indexed by time.Weekday.
	Days = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

	slotStarts = mustSlotStarts(Slots)
)

// SlotStartHour converts a 12-hour label such as "2pm" or "12am" into the 0-23 hour the slot begins at.
func SlotStartHour(label string) (int, error) {
	l := strings.ToLower(strings.TrimSpace(label))

	var pm bool
	switch {
	case strings.HasSuffix(l, "pm"):
		pm = true
	case strings.HasSuffix(l, "am"):
	default:
		return 0, domain.WrapError(domain.ErrCodeInvalid, "slot label "+strconv.Quote(label), domain.ErrInvalidSlot)
	}

	n, err := strconv.Atoi(l[:len(l)-2])
	if err != nil || n < 1 || n > 12 {
		return 0, domain.WrapError(domain.ErrCodeInvalid, "slot label "+strconv.Quote(label), domain.ErrInvalidSlot)
	}

	if n == 12 {
		n = 0
	}
	if pm {
		n += 12
	}
	return n, nil
}

// SlotIndex returns the row of the first slot covering hour, or false when the hour falls in the gap.
func SlotIndex(hour int) (int, bool) {
	for i, start := range slotStarts {
		if hour >= start && hour < start+slotWidth {
			return i, true
		}
	}
	return -1, false
}

// SlotFor returns the label of the slot covering hour.
func SlotFor(hour int) (string, bool) {
	idx, ok := SlotIndex(hour)
	if !ok {
		return "", false
	}
	return Slots[idx], true
}

func mustSlotStarts(labels []string) []int {
	starts := make([]int, len(labels))
	for i, label := range labels {
		h, err := SlotStartHour(label)
		if err != nil {
			panic(err)
		}
		starts[i] = h
	}
	return starts
}
