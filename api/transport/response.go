package transport

import "encoding/json"

// Envelope is the standard API response wrapper used for both success and error payloads.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess returns a success envelope.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// MutationResult reports whether an update or delete matched a record.
type MutationResult struct {
	Applied bool   `json:"applied"`
	ID      string `json:"id,omitempty"`
}

// StatView is a headline figure with its display string.
type StatView struct {
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Value     int64   `json:"value"`
	Display   string  `json:"display"`
	Change    float64 `json:"change"`
	Highlight bool    `json:"highlight,omitempty"`
}

type StatsResponse struct {
	Tents    StatView `json:"tents"`
	Catering StatView `json:"catering"`
	Combined StatView `json:"combined"`
}

// HeatmapResponse carries the grid as rows of slots by columns of days.
type HeatmapResponse struct {
	Slots      []string    `json:"slots"`
	Days       []string    `json:"days"`
	Grid       interface{} `json:"grid"`
	Highlight  interface{} `json:"highlight"`
	Unbucketed int         `json:"unbucketed"`
}
