package stir

import (
	"fmt"
	"time"
)

// InvalidMonthCodeError reports a contract month outside the product's listing cycle.
type InvalidMonthCodeError struct {
	Type  ContractType
	Month time.Month
}

func (e *InvalidMonthCodeError) Error() string {
	return fmt.Sprintf("invalid contract month %d for %s", int(e.Month), e.Type)
}

// UnknownContractTypeError reports a contract type outside {SR3, SR1, ZQ}.
type UnknownContractTypeError struct {
	Type ContractType
}

func (e *UnknownContractTypeError) Error() string {
	return fmt.Sprintf("unknown contract type %q", string(e.Type))
}

// NoActiveEventError reports a path start that precedes the first policy
// event's effective date. There is no implicit default rate.
type NoActiveEventError struct {
	Date time.Time
}

func (e *NoActiveEventError) Error() string {
	return fmt.Sprintf("no policy event active on %s", e.Date.Format("2006-01-02"))
}

// IncompletePathError reports a rate path that does not fully cover a
// required date span. Missing is the first uncovered day.
type IncompletePathError struct {
	Contract string // contract code, empty when the failure is not contract-specific
	From     time.Time
	To       time.Time
	Missing  time.Time
}

func (e *IncompletePathError) Error() string {
	msg := fmt.Sprintf("rate path incomplete: missing %s (need %s..%s)",
		e.Missing.Format("2006-01-02"), e.From.Format("2006-01-02"), e.To.Format("2006-01-02"))
	if e.Contract != "" {
		msg = e.Contract + ": " + msg
	}
	return msg
}
