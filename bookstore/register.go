package bookstore

import (
	"context"
	"errors"
)

const MessageRegistrationSuccessful = "Registration successful"

// RegisterCodeMessages are the fixed messages for registration error codes.
var RegisterCodeMessages = CodeMessages{
	CodeCredentialsRequired: MessageCredentialsRequired,
	CodeUserExists:          MessageUserExists,
	CodePasswordPolicy:      MessagePasswordPolicy,
}

var RegistrationHeader = []string{"userName", "password", "status_code", "userID", "message"}

type RegistrationResult struct {
	UserName   string
	Password   string
	StatusCode int
	UserID     string
	Message    string
	outcome    Outcome
}

func (r RegistrationResult) Values() []string {
	return []string{r.UserName, r.Password, statusCell(r.StatusCode), r.UserID, r.Message}
}

func (r RegistrationResult) Outcome() Outcome { return r.outcome }

// RegistrationFlow registers the users listed in rows of userName,password.
type RegistrationFlow struct {
	Client *Client
}

func (f *RegistrationFlow) Name() FlowName { return RegisterFlow }

func (f *RegistrationFlow) Header() []string { return RegistrationHeader }

func (f *RegistrationFlow) Handle(ctx context.Context, in InputRecord) (OutputRecord, bool) {
	userName := in.Get("userName")
	password := in.Get("password")
	if len(in.Missing("userName", "password")) > 0 {
		return registrationResult(userName, password, LocalValidationFailure(MessageCredentialsRequired)), false
	}
	if err := ValidatePassword(password); err != nil {
		var policyErr *PasswordPolicyError
		if errors.As(err, &policyErr) {
			f.Client.logger().Sugar().Infof("Invalid password for user %s: %v", userName, policyErr)
		}
		return registrationResult(userName, password, LocalValidationFailure(MessagePasswordPolicy)), false
	}

	res, err := f.Client.RegisterUser(userName, password, ctx)
	if err != nil {
		return registrationResult(userName, password, TransportFailure(err)), true
	}
	return registrationResult(userName, password, Classify(res.StatusCode, res.Body, RegisterCodeMessages)), true
}

func registrationResult(userName, password string, outcome Outcome) RegistrationResult {
	result := RegistrationResult{
		UserName:   userName,
		Password:   password,
		StatusCode: outcome.StatusCode,
		UserID:     NotAvailable,
		Message:    outcome.Message,
		outcome:    outcome,
	}
	if outcome.IsSuccess() {
		result.UserID = stringOr(outcome.Body, "userID", NotAvailable)
		result.Message = MessageRegistrationSuccessful
	}
	return result
}
