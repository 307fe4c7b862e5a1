package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shaharia-lab/contactmail/internal/contact"
)

// maxBodyBytes caps how much of a request body is read.
const maxBodyBytes = 64 << 10

// handleContact runs one contact form submission through the handler and
// mirrors its response.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		out := readFailure(err)
		s.metrics.Observe(out)
		writeResponse(w, out.Response())
		return
	}

	out := s.contactHandler.Process(r.Context(), contact.RequestFromString(string(body)))
	s.metrics.Observe(out)
	writeResponse(w, out.Response())
}

func readFailure(err error) contact.Outcome {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		msg := fmt.Sprintf("Too big: expected request body to have <=%d bytes", tooLarge.Limit)
		return contact.ValidationFailure{Details: contact.RootError(msg)}
	}
	return contact.DeliveryFailure{Message: fmt.Sprintf("reading request body: %v", err)}
}
