package bookstore

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// OutcomeKind tags the result of one bookstore API request.
type OutcomeKind int

const (
	Success OutcomeKind = iota
	ClientError
	ServerError
	TransportError
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case ClientError:
		return "client-error"
	case ServerError:
		return "server-error"
	case TransportError:
		return "transport-error"
	default:
		return "unknown"
	}
}

// Fixed messages written into output records.
const (
	MessageUnknownError          = "Unknown error"
	MessageInvalidJSON           = "invalid json response"
	MessageCredentialsRequired   = "UserName and Password required."
	MessageUserIDAndTokenMissing = "UserID and Token required."
	MessageUserNotFound          = "User not found!"
	MessageUserNotAuthorized     = "User not authorized!"
	MessageUserExists            = "User exists!"
	MessagePasswordPolicy        = "Passwords must have at least one non alphanumeric character, one digit ('0'-'9'), one uppercase ('A'-'Z'), one lowercase ('a'-'z'), one special character and Password must be eight characters or longer."
)

// Error codes the bookstore API puts in the "code" field of 4xx bodies.
const (
	CodeCredentialsRequired = "1200"
	CodeUserExists          = "1204"
	CodeUserNotFound        = "1207"
	CodePasswordPolicy      = "1300"
)

// CodeMessages maps an API error code to the message recorded for it on a 400.
type CodeMessages map[string]string

// Outcome is the classified result of one request.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int // 0 when no response was received
	Code       string
	Message    string
	Body       gjson.Result // parsed body, only populated on Success
}

func (o Outcome) IsSuccess() bool {
	return o.Kind == Success
}

// Classify maps an HTTP status and raw body to an Outcome.
// It performs no I/O so every branch can be exercised directly.
func Classify(status int, body string, codes CodeMessages) Outcome {
	if status >= 200 && status < 300 {
		if !gjson.Valid(body) {
			return Outcome{Kind: TransportError, StatusCode: status, Message: MessageInvalidJSON}
		}
		return Outcome{Kind: Success, StatusCode: status, Body: gjson.Parse(body)}
	}

	result := Outcome{Kind: ServerError, StatusCode: status}
	if status >= 400 && status < 500 {
		result.Kind = ClientError
	}
	if gjson.Valid(body) {
		result.Code = gjson.Get(body, "code").String()
	}
	if status == http.StatusBadRequest {
		if m, ok := codes[result.Code]; ok && result.Code != "" {
			result.Message = m
			return result
		}
	}
	result.Message = serverMessage(body)
	return result
}

// TransportFailure classifies an error raised before a usable response was read.
func TransportFailure(err error) Outcome {
	return Outcome{Kind: TransportError, Message: err.Error()}
}

// LocalValidationFailure classifies a record rejected before any request was sent.
func LocalValidationFailure(message string) Outcome {
	return Outcome{Kind: ClientError, StatusCode: http.StatusBadRequest, Message: message}
}

// serverMessage returns the "message" field of a JSON body, or the body text verbatim.
func serverMessage(body string) string {
	if gjson.Valid(body) {
		parsed := gjson.Parse(body)
		if parsed.Type == gjson.String && parsed.String() != "" {
			return parsed.String()
		}
		if m := parsed.Get("message"); m.Exists() && m.Value() != nil {
			return m.String()
		}
		return MessageUnknownError
	}
	if strings.TrimSpace(body) == "" {
		return MessageUnknownError
	}
	return body
}

// stringOr returns the value at path, or fallback when it is absent or null.
func stringOr(data gjson.Result, path, fallback string) string {
	result := data.Get(path)
	if !result.Exists() || result.Value() == nil {
		return fallback
	}
	return result.String()
}
