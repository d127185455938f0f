package ports

import "time"

// Clock provides wall-clock time to the tracker
type Clock interface {
	Now() time.Time
}
