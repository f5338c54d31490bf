package timeutil

import (
	"fmt"
	"strconv"
	"time"
)

// LocalClock renders a Zulu timestamp as a 12-hour clock string such as "7pm" or "8:05am".
//
// The UTC offset applied is the one loc observes at now, not at the timestamp's own date,
// so a winter game formatted during summer time is shifted by the summer offset.
// Hour 0 and 12 both render as "0".
func LocalClock(zulu string, now time.Time, loc *time.Location) (string, error) {
	parsed, err := ParseZulu(zulu)
	if err != nil {
		return "", fmt.Errorf("parse game time %q: %w", zulu, err)
	}
	if loc == nil {
		loc = time.Local
	}
	_, offset := now.In(loc).Zone()
	local := parsed.In(time.FixedZone("", offset))

	hour := local.Hour()
	clock := strconv.Itoa(hour % 12)
	if minute := local.Minute(); minute != 0 {
		clock += fmt.Sprintf(":%02d", minute)
	}
	if hour < 12 {
		return clock + "am", nil
	}
	return clock + "pm", nil
}
