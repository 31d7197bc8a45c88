package supabase

import "encoding/json"

// RequestError is returned for any non-2xx answer from the backend. Status
// carries the raw HTTP status line text, Message the backend's own error
// description when one was present in the body.
type RequestError struct {
	Status  string
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return "supabase: " + e.Message
	}

	return "supabase: request failed: " + e.Status
}

func errorFromResponse(status string, body []byte) error {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.Unmarshal(body, &payload)

	message := payload.Message
	if message == "" {
		message = payload.Msg
	}
	if message == "" {
		message = payload.ErrorDescription
	}
	if message == "" {
		message = payload.Error
	}

	return &RequestError{
		Status:  status,
		Message: message,
	}
}
