package client

import "fmt"

// TransportError indicates the request never produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach comparison service: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError indicates a non-2xx response. The backend returns
// plain-text error bodies.
type ServiceError struct {
	Body   string
	Status int
}

func (e *ServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("comparison service error: status %d", e.Status)
	}
	return fmt.Sprintf("comparison service error: status %d: %s", e.Status, e.Body)
}

// MalformedResponseError indicates a 2xx response whose body did not match
// the expected comparison result shape.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("comparison service returned a malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
