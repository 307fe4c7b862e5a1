package contact

import (
	"encoding/json"
	"fmt"
	"io"
)

// Event is the envelope delivered by the invoking platform.
type Event struct {
	Body *string `json:"body"`
}

// Request converts the event into a handler request.
func (e Event) Request() Request {
	return Request{Body: e.Body}
}

// EventResponse is the envelope returned to the invoking platform. Body holds
// the JSON-encoded response body as text.
type EventResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// DecodeEvent reads a single Event from r.
func DecodeEvent(r io.Reader) (Event, error) {
	var e Event
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return Event{}, fmt.Errorf("decoding event: %w", err)
	}
	return e, nil
}

// NewEventResponse wraps resp for the invoking platform.
func NewEventResponse(resp Response) (EventResponse, error) {
	b, err := resp.JSON()
	if err != nil {
		return EventResponse{}, fmt.Errorf("encoding response body: %w", err)
	}
	return EventResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}, nil
}
