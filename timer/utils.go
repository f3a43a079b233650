package timer

import (
	"fmt"
	"time"
)

// FormatTime converts a duration into a mm:ss string format, truncating
// partial seconds.
func FormatTime(d time.Duration) string {
	sec := int(d / time.Second)
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
