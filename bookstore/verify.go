package bookstore

import (
	"fmt"
	"strconv"
)

// Columns an input file may carry to state what each row should produce.
const (
	ExpectedStatusCodeColumn = "expected_status_code"
	ExpectedMessageColumn    = "expected_message"
)

// Verdict is the result of checking one output record against its expectations.
type Verdict struct {
	Line       int
	Checked    bool // false when the input row states no expectations
	Mismatches []string
}

func (v Verdict) Pass() bool {
	return len(v.Mismatches) == 0
}

// Verify compares an output record with the expected_* columns of its input.
// The message is only compared for unsuccessful outcomes; successful bodies
// carry data rather than a message.
func Verify(in InputRecord, out OutputRecord) Verdict {
	verdict := Verdict{Line: in.Line}
	outcome := out.Outcome()

	if expected, ok := in.Lookup(ExpectedStatusCodeColumn); ok && expected != "" {
		verdict.Checked = true
		code, err := strconv.Atoi(expected)
		switch {
		case err != nil:
			verdict.Mismatches = append(verdict.Mismatches, fmt.Sprintf("invalid %s %q", ExpectedStatusCodeColumn, expected))
		case code != outcome.StatusCode:
			verdict.Mismatches = append(verdict.Mismatches, fmt.Sprintf("expected status %d, got %d", code, outcome.StatusCode))
		}
	}

	if expected, ok := in.Lookup(ExpectedMessageColumn); ok && expected != "" && !outcome.IsSuccess() {
		verdict.Checked = true
		if expected != outcome.Message {
			verdict.Mismatches = append(verdict.Mismatches, fmt.Sprintf("expected message %q, got %q", expected, outcome.Message))
		}
	}
	return verdict
}

// VerifyAll pairs inputs and outputs by position.
func VerifyAll(inputs []InputRecord, outputs []OutputRecord) []Verdict {
	var result []Verdict
	for i := range inputs {
		if i >= len(outputs) {
			break
		}
		result = append(result, Verify(inputs[i], outputs[i]))
	}
	return result
}
