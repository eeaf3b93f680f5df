package appointment

import (
	"sort"
	"time"
)

const slotLayout = DateLayout + " " + TimeLayout

// SlotTime parses an appointment's date and time as a single local
// instant. Unparseable values return the zero time.
func SlotTime(d *Detail) time.Time {
	t, err := time.ParseInLocation(slotLayout, d.Date+" "+d.Time, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Partition splits appointments into upcoming (strictly after now,
// soonest first) and past (at or before now, most recent first).
// Unparseable slots land in past. Every input lands in exactly one
// side.
func Partition(items []*Detail, now time.Time) (upcoming, past []*Detail) {
	upcoming = make([]*Detail, 0, len(items))
	past = make([]*Detail, 0)
	for _, d := range items {
		if SlotTime(d).After(now) {
			upcoming = append(upcoming, d)
		} else {
			past = append(past, d)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return SlotTime(upcoming[i]).Before(SlotTime(upcoming[j]))
	})
	sort.SliceStable(past, func(i, j int) bool {
		return SlotTime(past[j]).Before(SlotTime(past[i]))
	})
	return upcoming, past
}

// Next returns the soonest upcoming appointment, or nil when none
// remain.
func Next(items []*Detail, now time.Time) *Detail {
	upcoming, _ := Partition(items, now)
	if len(upcoming) == 0 {
		return nil
	}
	return upcoming[0]
}
