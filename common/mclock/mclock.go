package mclock

import (
	"time"

	"github.com/aristanetworks/goarista/monotime"
)

type AbsTime time.Duration

func Now() AbsTime {
	return AbsTime(monotime.Now())
}

// Elapsed returns the time since start on the monotonic clock.
func Elapsed(start AbsTime) time.Duration {
	return time.Duration(Now() - start)
}
