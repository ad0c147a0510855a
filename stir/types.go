package stir

import (
	"fmt"
	"time"
)

// ContractType identifies a CME short-term interest rate futures product.
type ContractType string

const (
	// SR3 is the Three-Month SOFR future (quarterly IMM cycle, compounded settlement).
	SR3 ContractType = "SR3"
	// SR1 is the One-Month SOFR future (monthly cycle, arithmetic average settlement).
	SR1 ContractType = "SR1"
	// ZQ is the 30-Day Federal Funds future (monthly cycle, arithmetic average of EFFR).
	ZQ ContractType = "ZQ"
)

// monthCodes maps month number to the CME futures month code letter.
var monthCodes = [13]string{"", "F", "G", "H", "J", "K", "M", "N", "Q", "U", "V", "X", "Z"}

// MonthCode returns the CME month code letter (F, G, H, ... Z).
func MonthCode(m time.Month) string {
	return monthCodes[int(m)]
}

// Contract identifies one futures contract by product, year, and contract month.
type Contract struct {
	Type  ContractType
	Year  int
	Month time.Month
}

// NewContract validates the contract month for the product's listing cycle.
// SR3 lists on the quarterly IMM cycle only; SR1 and ZQ list every month.
func NewContract(ct ContractType, year int, month time.Month) (Contract, error) {
	if month < time.January || month > time.December {
		return Contract{}, &InvalidMonthCodeError{Type: ct, Month: month}
	}
	switch ct {
	case SR3:
		if month != time.March && month != time.June && month != time.September && month != time.December {
			return Contract{}, &InvalidMonthCodeError{Type: ct, Month: month}
		}
	case SR1, ZQ:
	default:
		return Contract{}, &UnknownContractTypeError{Type: ct}
	}
	return Contract{Type: ct, Year: year, Month: month}, nil
}

// Code returns the ticker, e.g. SR3H6 for the March 2026 three-month SOFR future.
func (c Contract) Code() string {
	return fmt.Sprintf("%s%s%d", c.Type, MonthCode(c.Month), c.Year%10)
}

func (c Contract) String() string {
	return fmt.Sprintf("%s (%s %d)", c.Code(), c.Month.String()[:3], c.Year)
}

// PriceConvention fixes the published precision for one contract type.
type PriceConvention struct {
	// RateDecimals is the precision the aggregate rate is rounded to before
	// conversion to price (e.g. 3 for 0.001%).
	RateDecimals int
	// Tick is the minimum price increment the final price snaps to.
	Tick float64
}

// SettlementResult is the outcome of settling one contract against a rate path.
type SettlementResult struct {
	Contract Contract

	// RawRate is the unrounded aggregate rate in percent (arithmetic mean for
	// SR1/ZQ, annualized compounded rate for SR3).
	RawRate float64
	// RoundedRate is RawRate at the convention's rate precision.
	RoundedRate float64

	// RawPrice is 100 minus RawRate.
	RawPrice float64
	// Price is 100 minus RoundedRate, snapped to the tick grid.
	Price float64

	Convention PriceConvention
}
