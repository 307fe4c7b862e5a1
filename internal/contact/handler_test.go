package contact_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shaharia-lab/contactmail/internal/contact"
	"github.com/shaharia-lab/contactmail/internal/mailer"
	"github.com/shaharia-lab/contactmail/internal/mailer/mocks"
)

const inbox = "inbox@example.com"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newHandler(s mailer.Sender) *contact.Handler {
	return contact.NewHandler(s, inbox, discardLogger())
}

func TestHandle_Success(t *testing.T) {
	sender := &mocks.MockSender{}
	sender.On("Send", mock.Anything, mailer.Message{
		To:      inbox,
		From:    inbox,
		Subject: "Contact form submission: Ada (ada@example.com)",
		Body:    "NAME: Ada\nEMAIL: ada@example.com\nMESSAGE: \"Hi\"\n",
	}).Return(nil).Once()

	resp := newHandler(sender).Handle(context.Background(),
		contact.RequestFromString(`{"name":"Ada","email":"ada@example.com","message":"Hi"}`))

	assert.Equal(t, contact.Response{
		StatusCode: http.StatusCreated,
		Body:       contact.SuccessBody{Message: "Email sent"},
	}, resp)

	b, err := resp.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Email sent"}`, string(b))
	sender.AssertExpectations(t)
}

func TestHandle_SenderFailure(t *testing.T) {
	sender := &mocks.MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	resp := newHandler(sender).Handle(context.Background(),
		contact.RequestFromString(`{"name":"Ada","email":"ada@example.com","message":"Hi"}`))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	b, err := resp.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Internal Server Error","details":"boom"}`, string(b))
	sender.AssertExpectations(t)
}

func TestHandle_ValidationFailureDoesNotSend(t *testing.T) {
	tests := []struct {
		name string
		req  contact.Request
	}{
		{"nil body", contact.Request{}},
		{"empty body", contact.RequestFromString("")},
		{"not json", contact.RequestFromString("not json")},
		{"bad email", contact.RequestFromString(`{"name":"Ada","email":"x","message":"Hi"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mocks.MockSender{}
			resp := newHandler(sender).Handle(context.Background(), tt.req)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body, ok := resp.Body.(contact.ErrorBody)
			require.True(t, ok)
			assert.Equal(t, "Invalid parameters provided.", body.Error)
			assert.IsType(t, &contact.ErrorTree{}, body.Details)
			sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_NilBodyReportsAllFields(t *testing.T) {
	resp := newHandler(&mocks.MockSender{}).Handle(context.Background(), contact.Request{})

	body := resp.Body.(contact.ErrorBody)
	tree := body.Details.(*contact.ErrorTree)
	assert.Equal(t, []string{"name", "email", "message"}, tree.Fields())
}

func TestHandle_ValidationResponseJSON(t *testing.T) {
	resp := newHandler(&mocks.MockSender{}).Handle(context.Background(),
		contact.RequestFromString(`{"name":"Ada","message":"Hi"}`))

	b, err := resp.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"error": "Invalid parameters provided.",
		"details": {
			"errors": [],
			"properties": {"email": {"errors": ["Invalid input: expected string, received undefined"]}}
		}
	}`, string(b))
}

func TestHandle_UnknownDetails(t *testing.T) {
	tests := []struct {
		name   string
		sender mailer.Sender
		want   string
	}{
		{
			name:   "error without text",
			sender: mailer.Func(func(context.Context, mailer.Message) error { return errors.New("") }),
			want:   "Unknown",
		},
		{
			name:   "panic with error",
			sender: mailer.Func(func(context.Context, mailer.Message) error { panic(errors.New("kaboom")) }),
			want:   "kaboom",
		},
		{
			name:   "panic with string",
			sender: mailer.Func(func(context.Context, mailer.Message) error { panic("oops") }),
			want:   "oops",
		},
		{
			name:   "panic with other value",
			sender: mailer.Func(func(context.Context, mailer.Message) error { panic(42) }),
			want:   "Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newHandler(tt.sender).Handle(context.Background(),
				contact.RequestFromString(`{"name":"Ada","email":"ada@example.com","message":"Hi"}`))

			assert.Equal(t, contact.Response{
				StatusCode: http.StatusInternalServerError,
				Body:       contact.ErrorBody{Error: "Internal Server Error", Details: tt.want},
			}, resp)
		})
	}
}

func TestHandle_NoDeduplication(t *testing.T) {
	calls := 0
	h := newHandler(mailer.Func(func(context.Context, mailer.Message) error {
		calls++
		return nil
	}))
	req := contact.RequestFromString(`{"name":"Ada","email":"ada@example.com","message":"Hi"}`)

	h.Handle(context.Background(), req)
	h.Handle(context.Background(), req)
	assert.Equal(t, 2, calls)
}

func TestProcess_OutcomeKinds(t *testing.T) {
	ok := newHandler(mailer.Func(func(context.Context, mailer.Message) error { return nil }))
	fail := newHandler(mailer.Func(func(context.Context, mailer.Message) error { return errors.New("down") }))
	valid := contact.RequestFromString(`{"name":"Ada","email":"ada@example.com","message":"Hi"}`)

	assert.Equal(t, contact.Success{}, ok.Process(context.Background(), valid))
	assert.Equal(t, contact.DeliveryFailure{Message: "down"}, fail.Process(context.Background(), valid))

	out := ok.Process(context.Background(), contact.RequestFromString(`{}`))
	assert.Equal(t, contact.KindValidationFailure, out.Kind())
}

func TestHandle_LogsWithoutSubmissionContent(t *testing.T) {
	var buf jsonLines
	h := contact.NewHandler(mailer.Func(func(context.Context, mailer.Message) error { return nil }),
		inbox, slog.New(slog.NewJSONHandler(&buf, nil)))

	h.Handle(context.Background(),
		contact.RequestFromString(`{"name":"Ada","email":"ada@example.com","message":"secret"}`))

	require.Len(t, buf.lines, 1)
	assert.Equal(t, "success", buf.lines[0]["outcome"])
	assert.EqualValues(t, 201, buf.lines[0]["status"])
	assert.NotContains(t, buf.raw, "secret")
	assert.NotContains(t, buf.raw, "ada@example.com")
}

type jsonLines struct {
	raw   string
	lines []map[string]any
}

func (j *jsonLines) Write(p []byte) (int, error) {
	j.raw += string(p)
	var m map[string]any
	if err := json.Unmarshal(p, &m); err != nil {
		return 0, err
	}
	j.lines = append(j.lines, m)
	return len(p), nil
}
