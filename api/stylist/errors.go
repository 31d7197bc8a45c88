package stylist

// RequestFailedError is returned for any non-2xx answer from the stylist
// service. Status carries the raw HTTP status line text.
type RequestFailedError struct {
	Status string
}

func (e *RequestFailedError) Error() string {
	return "request failed: " + e.Status
}
