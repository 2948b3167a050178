package events

import "time"

type Status string

const (
	StatusUpcoming Status = "UPCOMING"
	StatusActive   Status = "ACTIVE"
	StatusEnded    Status = "ENDED"
)

// showLength is how long a show counts as running after its start
const showLength = 4 * time.Hour

// StatusAt derives the lifecycle status of an event from its show dates
func StatusAt(dates []time.Time, now time.Time) Status {
	if len(dates) == 0 {
		return StatusEnded
	}

	upcoming := false
	for _, d := range dates {
		switch {
		case !now.Before(d) && now.Before(d.Add(showLength)):
			return StatusActive
		case now.Before(d):
			upcoming = true
		}
	}
	if upcoming {
		return StatusUpcoming
	}
	return StatusEnded
}
