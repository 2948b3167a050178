package events

import (
	"encoding/json"
	"time"
)

// datesJSON renders dates the way the json serializer stores them
func datesJSON(dates []time.Time) string {
	b, err := json.Marshal(dates)
	if err != nil {
		return "[]"
	}
	return string(b)
}
