package monitor

import "time"

// Status is the last observed state of the record store.
type Status struct {
	Storage      bool      `json:"storage"`
	Driver       string    `json:"driver"`
	PendingFlush bool      `json:"pending_flush"`
	LastCheck    time.Time `json:"last_check"`
}
