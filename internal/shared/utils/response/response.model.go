package response

type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}

// RetryHint is attached to errors the client may retry as-is
type RetryHint struct {
	Retry     bool   `json:"retry"`
	BookingID string `json:"bookingId,omitempty"`
}

// RedirectHint tells the client where to go next
type RedirectHint struct {
	Redirect string `json:"redirect"`
	Notice   string `json:"notice,omitempty"`
}
