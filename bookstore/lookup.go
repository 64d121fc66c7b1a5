package bookstore

import (
	"context"
)

// LookupCodeMessages are the fixed messages for user lookup error codes.
var LookupCodeMessages = CodeMessages{
	CodeCredentialsRequired: MessageUserNotAuthorized,
	CodeUserNotFound:        MessageUserNotFound,
}

var UserLookupHeader = []string{"userID", "status_code", "message", "username", "books"}

type UserLookupResult struct {
	UserID     string
	StatusCode int
	Message    string
	Username   string
	Books      string
	outcome    Outcome
}

func (r UserLookupResult) Values() []string {
	return []string{r.UserID, statusCell(r.StatusCode), r.Message, r.Username, r.Books}
}

func (r UserLookupResult) Outcome() Outcome { return r.outcome }

// UserLookupFlow fetches user details and their books for rows of userID,token.
type UserLookupFlow struct {
	Client *Client
}

func (f *UserLookupFlow) Name() FlowName { return LookupFlow }

func (f *UserLookupFlow) Header() []string { return UserLookupHeader }

func (f *UserLookupFlow) Handle(ctx context.Context, in InputRecord) (OutputRecord, bool) {
	userID := in.Get("userID")
	token := in.Get("token")
	if len(in.Missing("userID", "token")) > 0 {
		return userLookupResult(userID, LocalValidationFailure(MessageUserIDAndTokenMissing)), false
	}

	res, err := f.Client.GetUser(userID, token, ctx)
	if err != nil {
		return userLookupResult(userID, TransportFailure(err)), true
	}
	return userLookupResult(userID, Classify(res.StatusCode, res.Body, LookupCodeMessages)), true
}

// userLookupResult folds an outcome into an output row. Only a successful
// body is read; failures render as an empty body would.
func userLookupResult(userID string, outcome Outcome) UserLookupResult {
	result := UserLookupResult{
		UserID:     userID,
		StatusCode: outcome.StatusCode,
		Message:    outcome.Message,
		Books:      NoBooksFound,
		outcome:    outcome,
	}
	if outcome.IsSuccess() {
		result.Message = stringOr(outcome.Body, "message", "")
		result.Username = stringOr(outcome.Body, "username", "")
		result.Books = FormatBooks(BooksFromJSON(outcome.Body.Get("books")))
	}
	return result
}
