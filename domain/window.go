package domain

import (
	"fmt"
	"time"
)

//----------------------------------------------------------------------------------------------------
// Native Epoch and Time Window Calculation
//----------------------------------------------------------------------------------------------------

// AppleEpochOffset is the archive's timestamp origin, 2001-01-01 00:00:00 UTC,
// expressed as seconds past the Unix epoch. Native time = Unix time - offset.
const AppleEpochOffset int64 = 978307200

// NativeFromTime converts a wall-clock time to native epoch seconds.
func NativeFromTime(t time.Time) int64 {
	return t.Unix() - AppleEpochOffset
}

// TimeFromNative converts native epoch seconds back to wall-clock time in loc.
func TimeFromNative(native int64, loc *time.Location) time.Time {
	return time.Unix(native+AppleEpochOffset, 0).In(loc)
}

// NewYearWindow returns the half-open native-epoch window spanning the given
// calendar year. Year boundaries are computed with calendar arithmetic in loc,
// so the window edges follow that timezone's midnight, not UTC's.
func NewYearWindow(year int, loc *time.Location) (TimeWindow, error) {
	if year < 1 || year > 9999 {
		return TimeWindow{}, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)

	w := TimeWindow{
		StartNative: NativeFromTime(start),
		EndNative:   NativeFromTime(end),
	}
	if w.StartNative >= w.EndNative {
		return TimeWindow{}, fmt.Errorf("%w: %d produced a non-monotonic window", ErrInvalidYear, year)
	}
	return w, nil
}
