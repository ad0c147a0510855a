package stir

// averageSettler prices SR1 and ZQ: the arithmetic mean of the daily
// reference rate over every calendar day of the contract month, with
// weekend and holiday days carrying the prior business day's rate (the
// path is already dense). Price = 100 - average.
type averageSettler struct {
	e Engine
}

func (s averageSettler) Settle(c Contract, path RatePath) (SettlementResult, error) {
	start, end := c.ReferencePeriod(s.e.Calendar)
	last := end.AddDate(0, 0, -1) // end is exclusive; average through month end

	if !path.Covers(start, last) {
		missing := start
		if path.Covers(start, start) {
			missing = path.End().AddDate(0, 0, 1)
		}
		return SettlementResult{}, &IncompletePathError{
			Contract: c.Code(), From: start, To: last, Missing: missing,
		}
	}

	sum := 0.0
	n := 0
	for day := start; !day.After(last); day = day.AddDate(0, 0, 1) {
		r, _ := path.RateOn(day)
		sum += r
		n++
	}
	return s.e.result(c, sum/float64(n))
}
