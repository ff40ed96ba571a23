package boxfulapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// User-facing fallback messages.
const (
	FallbackMessage   = "Ha ocurrido un error"
	ConnectionMessage = "Error de conexión"
	TimeoutMessage    = "La solicitud ha tardado demasiado"
)

// APIError is a failed call as the user should see it.
type APIError struct {
	// Message is the server-provided message or a fallback.
	Message string
	// Detail is the server's "error" field or the underlying transport error.
	Detail     string
	StatusCode int
	Timeout    bool
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("boxful api: status %d: %s", e.StatusCode, e.Message)
	}
	if e.Detail != "" {
		return fmt.Sprintf("boxful api: %s: %s", e.Message, e.Detail)
	}
	return "boxful api: " + e.Message
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// message accepts both a plain string and the string list some validation
// layers send back.
func (b errorBody) message() string {
	if len(b.Message) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(b.Message, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(b.Message, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return ""
}

// toAPIError maps a transport failure to an *APIError. Cancellation of the
// caller's context is passed through unchanged.
func toAPIError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return err
	}

	var he *httpStatusError
	if errors.As(err, &he) {
		var body errorBody
		_ = json.Unmarshal([]byte(he.Body), &body)
		msg := body.message()
		if msg == "" {
			msg = FallbackMessage
		}
		return &APIError{Message: msg, Detail: body.Error, StatusCode: he.Code}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &APIError{Message: TimeoutMessage, Detail: err.Error(), Timeout: true}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	return &APIError{Message: ConnectionMessage, Detail: err.Error()}
}

// UserMessage is the text to show the user.
func (e *APIError) UserMessage() string {
	return e.Message
}
