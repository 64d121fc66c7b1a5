package bookstore

import (
	"context"
	"fmt"
)

// FlowName identifies one of the batch flows.
type FlowName string

const (
	LookupFlow   FlowName = "lookup"
	LoginFlow    FlowName = "login"
	RegisterFlow FlowName = "register"
)

// FlowNames lists every flow in CLI order.
var FlowNames = []FlowName{LookupFlow, LoginFlow, RegisterFlow}

// OutputRecord is one row of a flow's output file.
type OutputRecord interface {
	Values() []string // cell values in Flow.Header order
	Outcome() Outcome // outcome of the record's primary request
}

// Flow turns one input record into one output record.
// Implementations exist for each batch flow (UserLookupFlow, LoginTokenFlow, RegistrationFlow).
type Flow interface {
	Name() FlowName
	Header() []string
	// Handle never fails; every error is folded into the returned record.
	// requested reports whether any network call was made.
	Handle(ctx context.Context, in InputRecord) (out OutputRecord, requested bool)
}

// NewFlow creates the Flow registered under name.
func NewFlow(name FlowName, client *Client) (Flow, error) {
	switch name {
	case LookupFlow:
		return &UserLookupFlow{Client: client}, nil
	case LoginFlow:
		return &LoginTokenFlow{Client: client}, nil
	case RegisterFlow:
		return &RegistrationFlow{Client: client}, nil
	default:
		return nil, fmt.Errorf("unknown flow %q", name)
	}
}
