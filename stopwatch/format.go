package stopwatch

import (
	"fmt"
	"time"
)

// Components splits d into whole minutes, seconds within the minute and
// tenths within the second. Negative durations count as zero.
func Components(d time.Duration) (minutes, seconds, tenths int) {
	if d < 0 {
		d = 0
	}
	minutes = int(d / time.Minute)
	seconds = int(d/time.Second) % 60
	tenths = int((d % time.Second) / (100 * time.Millisecond))
	return minutes, seconds, tenths
}

// FormatElapsed converts d into a MM:SS.T string.
func FormatElapsed(d time.Duration) string {
	m, s, t := Components(d)
	return fmt.Sprintf("%02d:%02d.%d", m, s, t)
}
