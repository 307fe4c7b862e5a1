package contact

import (
	"encoding/json"
	"net/http"
)

// Fixed response labels.
const (
	SuccessMessage      = "Email sent"
	InvalidParamsLabel  = "Invalid parameters provided."
	InternalErrorLabel  = "Internal Server Error"
	UnknownErrorDetails = "Unknown"
)

// Outcome kinds, used as log and metric labels.
const (
	KindSuccess           = "success"
	KindValidationFailure = "validation_failure"
	KindDeliveryFailure   = "delivery_failure"
)

// Outcome is the result of handling one request. It is one of Success,
// ValidationFailure or DeliveryFailure.
type Outcome interface {
	// Kind returns the outcome label.
	Kind() string
	// Response maps the outcome to its boundary response.
	Response() Response

	isOutcome()
}

// Success means the email was handed to the sender without error.
type Success struct{}

// ValidationFailure means the payload did not satisfy the schema.
type ValidationFailure struct {
	Details *ErrorTree
}

// DeliveryFailure covers sender errors and anything else unexpected.
// Message is never empty.
type DeliveryFailure struct {
	Message string
}

func (Success) Kind() string           { return KindSuccess }
func (ValidationFailure) Kind() string { return KindValidationFailure }
func (DeliveryFailure) Kind() string   { return KindDeliveryFailure }

func (Success) isOutcome()           {}
func (ValidationFailure) isOutcome() {}
func (DeliveryFailure) isOutcome()   {}

// Response returns a 201 with the fixed success message.
func (Success) Response() Response {
	return Response{StatusCode: http.StatusCreated, Body: SuccessBody{Message: SuccessMessage}}
}

// Response returns a 400 carrying the field breakdown.
func (f ValidationFailure) Response() Response {
	return Response{StatusCode: http.StatusBadRequest, Body: ErrorBody{Error: InvalidParamsLabel, Details: f.Details}}
}

// Response returns a 500 carrying the failure message.
func (f DeliveryFailure) Response() Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: ErrorBody{Error: InternalErrorLabel, Details: f.Message}}
}

// newDeliveryFailure builds a DeliveryFailure from err, falling back to
// UnknownErrorDetails when err carries no text.
func newDeliveryFailure(err error) DeliveryFailure {
	if err == nil || err.Error() == "" {
		return DeliveryFailure{Message: UnknownErrorDetails}
	}
	return DeliveryFailure{Message: err.Error()}
}

// Response is the structured reply returned to the invoking platform.
type Response struct {
	StatusCode int
	Body       any
}

// JSON encodes the response body.
func (r Response) JSON() ([]byte, error) {
	return json.Marshal(r.Body)
}

// SuccessBody is the 201 payload.
type SuccessBody struct {
	Message string `json:"message"`
}

// ErrorBody is the 400 and 500 payload. Details is an *ErrorTree for
// validation failures and a string otherwise.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details"`
}
