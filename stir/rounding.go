package stir

import "math"

// RoundingConfig maps each contract type to its published price convention.
type RoundingConfig map[ContractType]PriceConvention

// DefaultRounding carries the CME conventions: the aggregate SOFR/EFFR rate
// is rounded to 0.001% (0.0001% for SR3 compounding) and the settlement
// price snaps to the quarter-tick grid.
var DefaultRounding = RoundingConfig{
	SR3: {RateDecimals: 4, Tick: 0.0025},
	SR1: {RateDecimals: 3, Tick: 0.0025},
	ZQ:  {RateDecimals: 3, Tick: 0.0025},
}

// tieEps bounds how close to an exact midpoint a value must sit to be
// treated as a tie. Raw prices arrive through float arithmetic, so exact
// midpoints rarely survive as exact halves.
const tieEps = 1e-9

// roundHalfEvenUnit rounds q to the nearest integer, ties to even.
func roundHalfEvenUnit(q float64) float64 {
	f := math.Floor(q)
	frac := q - f
	switch {
	case math.Abs(frac-0.5) < tieEps:
		if math.Mod(f, 2) == 0 {
			return f
		}
		return f + 1
	case frac < 0.5:
		return f
	default:
		return f + 1
	}
}

// RoundHalfEven rounds x to the given number of decimal places using
// round-half-to-even (banker's rounding), the CME tie-breaking convention.
func RoundHalfEven(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return roundHalfEvenUnit(x*pow) / pow
}

// Round snaps a raw price to the contract type's tick grid, ties to the
// even tick. Fails with UnknownContractTypeError for unrecognized types.
func (rc RoundingConfig) Round(ct ContractType, raw float64) (float64, error) {
	conv, ok := rc[ct]
	if !ok {
		return 0, &UnknownContractTypeError{Type: ct}
	}
	return roundHalfEvenUnit(raw/conv.Tick) * conv.Tick, nil
}

// Convention returns the price convention for a contract type.
func (rc RoundingConfig) Convention(ct ContractType) (PriceConvention, error) {
	conv, ok := rc[ct]
	if !ok {
		return PriceConvention{}, &UnknownContractTypeError{Type: ct}
	}
	return conv, nil
}
