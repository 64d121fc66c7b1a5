// go test github.com/ZulvikaK/bookstore/bookstore -v
package bookstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		codes   CodeMessages
		kind    OutcomeKind
		code    string
		message string
	}{
		{
			name:   "ok",
			status: 200,
			body:   `{"userId":"u1","username":"PixelPusher22","books":[]}`,
			kind:   Success,
		},
		{
			name:   "created",
			status: 201,
			body:   `{"userID":"u1","username":"ZulvikaTestke1","books":[]}`,
			kind:   Success,
		},
		{
			name:    "ok with malformed body",
			status:  200,
			body:    `<html>maintenance</html>`,
			kind:    TransportError,
			message: MessageInvalidJSON,
		},
		{
			name:    "ok with empty body",
			status:  200,
			body:    ``,
			kind:    TransportError,
			message: MessageInvalidJSON,
		},
		{
			name:    "bad request with known code",
			status:  400,
			body:    `{"code":"1204","message":"User exists!"}`,
			codes:   RegisterCodeMessages,
			kind:    ClientError,
			code:    "1204",
			message: MessageUserExists,
		},
		{
			name:    "bad request fixed message wins over server text",
			status:  400,
			body:    `{"code":"1300","message":"Passwords must have at least one non alphanumeric character"}`,
			codes:   RegisterCodeMessages,
			kind:    ClientError,
			code:    "1300",
			message: MessagePasswordPolicy,
		},
		{
			name:    "bad request with unknown code falls back to server message",
			status:  400,
			body:    `{"code":"9999","message":"Something else"}`,
			codes:   RegisterCodeMessages,
			kind:    ClientError,
			code:    "9999",
			message: "Something else",
		},
		{
			name:    "bad request with unknown code and no message",
			status:  400,
			body:    `{"code":"9999"}`,
			codes:   LoginCodeMessages,
			kind:    ClientError,
			code:    "9999",
			message: MessageUnknownError,
		},
		{
			name:    "unauthorized keeps server message",
			status:  401,
			body:    `{"code":"1200","message":"User not authorized!"}`,
			codes:   LookupCodeMessages,
			kind:    ClientError,
			code:    "1200",
			message: "User not authorized!",
		},
		{
			name:    "not found",
			status:  404,
			body:    `{"code":"1207","message":"User not found!"}`,
			codes:   LoginCodeMessages,
			kind:    ClientError,
			code:    "1207",
			message: "User not found!",
		},
		{
			name:    "not acceptable",
			status:  406,
			body:    `{"code":"1204","message":"User exists!"}`,
			codes:   RegisterCodeMessages,
			kind:    ClientError,
			code:    "1204",
			message: "User exists!",
		},
		{
			name:    "too many requests plain text",
			status:  429,
			body:    `Too Many Requests`,
			kind:    ClientError,
			message: "Too Many Requests",
		},
		{
			name:    "server error plain text",
			status:  500,
			body:    `Internal Server Error`,
			kind:    ServerError,
			message: "Internal Server Error",
		},
		{
			name:    "server error json message",
			status:  500,
			body:    `{"message":"Internal Server Error"}`,
			kind:    ServerError,
			message: "Internal Server Error",
		},
		{
			name:    "server error empty body",
			status:  502,
			body:    ``,
			kind:    ServerError,
			message: MessageUnknownError,
		},
		{
			name:    "redirect",
			status:  302,
			body:    `Found`,
			kind:    ServerError,
			message: "Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.status, tt.body, tt.codes)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.Equal(t, tt.code, got.Code)
			if tt.kind != Success {
				assert.Equal(t, tt.message, got.Message)
			}
		})
	}
}

func TestClassify_SuccessBodyIsParsed(t *testing.T) {
	got := Classify(200, `{"username":"PixelPusher22","books":[{"title":"T"}]}`, nil)
	assert.True(t, got.IsSuccess())
	assert.Equal(t, "PixelPusher22", got.Body.Get("username").String())
	assert.True(t, got.Body.Get("books").IsArray())
}

func TestTransportFailure(t *testing.T) {
	got := TransportFailure(errors.New("dial tcp: connection refused"))
	assert.Equal(t, TransportError, got.Kind)
	assert.Equal(t, 0, got.StatusCode)
	assert.Equal(t, "dial tcp: connection refused", got.Message)
}

func TestLocalValidationFailure(t *testing.T) {
	got := LocalValidationFailure(MessageCredentialsRequired)
	assert.Equal(t, ClientError, got.Kind)
	assert.Equal(t, 400, got.StatusCode)
	assert.Equal(t, MessageCredentialsRequired, got.Message)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "client-error", ClientError.String())
	assert.Equal(t, "server-error", ServerError.String())
	assert.Equal(t, "transport-error", TransportError.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}
