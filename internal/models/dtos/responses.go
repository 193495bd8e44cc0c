package dtos

// FieldError is a single field-level validation failure as serialized to
// clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Status       string       `json:"status"`
	Message      string       `json:"message,omitempty"`
	ResponseTime string       `json:"responseTime,omitempty"`
	Data         any          `json:"data,omitempty"`
	Errors       []FieldError `json:"errors,omitempty"`
}

// MessageResponse is used where the original API returned a bare message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CompletionResponse echoes the recorded hobbs values after completing a
// reservation.
type CompletionResponse struct {
	Message    string  `json:"message"`
	StartHobbs float64 `json:"start_hobbs"`
	EndHobbs   float64 `json:"end_hobbs"`
}

// SubscriptionResponse reports the new subscription state for an aircraft.
type SubscriptionResponse struct {
	Subscribed bool  `json:"subscribed"`
	AircraftID int64 `json:"aircraft_id"`
}
