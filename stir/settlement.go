package stir

import (
	"github.com/EmilienVaast/STIR-Futures/calendar"
)

// Settler reduces a rate path over a contract's reference period to one
// settlement result. The path is borrowed read-only and never mutated.
type Settler interface {
	Settle(c Contract, path RatePath) (SettlementResult, error)
}

// Engine binds the calendar and rounding configuration shared by the
// per-contract settlers. The contract-type set is closed, so dispatch is a
// switch rather than open-ended registration.
type Engine struct {
	Calendar calendar.CalendarID
	Rounding RoundingConfig
}

// NewEngine returns an engine on the US government securities calendar with
// the default CME price conventions.
func NewEngine() Engine {
	return Engine{Calendar: calendar.USGovt, Rounding: DefaultRounding}
}

// Settle computes the settlement price for one contract from a daily rate
// path covering its reference period. For ZQ the path must be the EFFR
// series; for SR1 and SR3 the SOFR series.
func (e Engine) Settle(c Contract, path RatePath) (SettlementResult, error) {
	var s Settler
	switch c.Type {
	case ZQ, SR1:
		s = averageSettler{e}
	case SR3:
		s = compoundSettler{e}
	default:
		return SettlementResult{}, &UnknownContractTypeError{Type: c.Type}
	}
	return s.Settle(c, path)
}

// result assembles a SettlementResult from the aggregate rate, applying the
// contract type's rate precision and tick grid.
func (e Engine) result(c Contract, rawRate float64) (SettlementResult, error) {
	conv, err := e.Rounding.Convention(c.Type)
	if err != nil {
		return SettlementResult{}, err
	}
	roundedRate := RoundHalfEven(rawRate, conv.RateDecimals)
	price, err := e.Rounding.Round(c.Type, 100.0-roundedRate)
	if err != nil {
		return SettlementResult{}, err
	}
	return SettlementResult{
		Contract:    c,
		RawRate:     rawRate,
		RoundedRate: roundedRate,
		RawPrice:    100.0 - rawRate,
		Price:       price,
		Convention:  conv,
	}, nil
}
