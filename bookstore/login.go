package bookstore

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"
)

const (
	LoginStatusSuccess = "Success"
	LoginStatusFailed  = "Failed"
	LoginStatusError   = "Error"

	TokenStatusSuccess    = "Success"
	TokenGenerationFailed = "Failed to generate token"
)

// LoginCodeMessages are the fixed messages for login error codes.
var LoginCodeMessages = CodeMessages{
	CodeCredentialsRequired: MessageCredentialsRequired,
	CodeUserNotFound:        MessageUserNotFound,
}

var LoginHeader = []string{"username", "login_status", "token", "expires", "result", "status", "status_code"}

type LoginResult struct {
	Username    string
	LoginStatus string
	Token       string
	Expires     string
	Result      string
	Status      string
	StatusCode  int // status of the login request, not the token request
	outcome     Outcome
	token       *Outcome
}

func (r LoginResult) Values() []string {
	return []string{r.Username, r.LoginStatus, r.Token, r.Expires, r.Result, r.Status, statusCell(r.StatusCode)}
}

func (r LoginResult) Outcome() Outcome { return r.outcome }

// TokenOutcome returns the outcome of the chained token request, if one was made.
func (r LoginResult) TokenOutcome() (Outcome, bool) {
	if r.token == nil {
		return Outcome{}, false
	}
	return *r.token, true
}

// LoginTokenFlow checks credentials for rows of username,password and, for each
// successful login, generates a token with the same credentials.
type LoginTokenFlow struct {
	Client *Client
}

func (f *LoginTokenFlow) Name() FlowName { return LoginFlow }

func (f *LoginTokenFlow) Header() []string { return LoginHeader }

func (f *LoginTokenFlow) Handle(ctx context.Context, in InputRecord) (OutputRecord, bool) {
	username := in.Get("username")
	password := in.Get("password")
	if len(in.Missing("username", "password")) > 0 {
		return loginResult(username, LocalValidationFailure(MessageCredentialsRequired)), false
	}

	res, err := f.Client.Authorize(username, password, ctx)
	if err != nil {
		return loginResult(username, TransportFailure(err)), true
	}
	outcome := Classify(res.StatusCode, res.Body, LoginCodeMessages)
	result := loginResult(username, outcome)
	if !outcome.IsSuccess() {
		return result, true
	}

	// A failed token request still leaves the login recorded as a success.
	var tokenOutcome Outcome
	tokenRes, err := f.Client.GenerateToken(username, password, ctx)
	if err != nil {
		tokenOutcome = TransportFailure(err)
	} else {
		tokenOutcome = Classify(tokenRes.StatusCode, tokenRes.Body, LoginCodeMessages)
	}
	return withToken(result, tokenOutcome, tokenRes.Body), true
}

func loginResult(username string, outcome Outcome) LoginResult {
	result := LoginResult{
		Username:   username,
		StatusCode: outcome.StatusCode,
		outcome:    outcome,
	}
	switch outcome.Kind {
	case Success:
		result.LoginStatus = LoginStatusSuccess
	case TransportError:
		result.LoginStatus = LoginStatusError
		result.Status = outcome.Message
	default:
		result.LoginStatus = LoginStatusFailed
		result.Status = outcome.Message
	}
	return result
}

// withToken folds the token request into a successful login row.
// body is the raw token response; a failed token request still reports the
// "status" and "result" fields it returned.
func withToken(result LoginResult, outcome Outcome, body string) LoginResult {
	result.token = &outcome
	if outcome.IsSuccess() && outcome.StatusCode == http.StatusOK &&
		stringOr(outcome.Body, "status", "") == TokenStatusSuccess {
		result.Token = stringOr(outcome.Body, "token", "")
		result.Expires = stringOr(outcome.Body, "expires", "")
		result.Result = stringOr(outcome.Body, "result", "")
		result.Status = stringOr(outcome.Body, "status", "")
		return result
	}

	result.Token = TokenGenerationFailed
	if outcome.Kind == TransportError {
		result.Status = outcome.Message
		return result
	}
	parsed := outcome.Body
	if !parsed.Exists() && gjson.Valid(body) {
		parsed = gjson.Parse(body)
	}
	result.Result = stringOr(parsed, "result", "")
	result.Status = stringOr(parsed, "status", LoginStatusFailed)
	return result
}
