package report

// Official 2025 final settlement prices (Barchart), used to validate the
// model's realized reconstruction. Contracts absent from a map had not
// expired when the references were collected.

// OfficialSR3_2025 holds quarterly Three-Month SOFR settlements.
var OfficialSR3_2025 = map[string]float64{
	"SR3H5": 95.6577,
	"SR3M5": 95.6240,
	"SR3U5": 95.9134,
}

// OfficialSR1_2025 holds monthly One-Month SOFR settlements.
var OfficialSR1_2025 = map[string]float64{
	"SR1F5": 95.6825,
	"SR1G5": 95.6575,
	"SR1H5": 95.6710,
	"SR1J5": 95.6570,
	"SR1K5": 95.6950,
	"SR1M5": 95.6850,
	"SR1N5": 95.6650,
	"SR1Q5": 95.6525,
	"SR1U5": 95.7030,
	"SR1V5": 95.8075,
	"SR1X5": 96.0025,
	"SR1Z5": 96.2180,
}

// OfficialZQ_2025 holds monthly 30-Day Fed Funds settlements.
var OfficialZQ_2025 = map[string]float64{
	"ZQF5": 95.6725,
	"ZQG5": 95.6700,
	"ZQH5": 95.6700,
	"ZQJ5": 95.6700,
	"ZQK5": 95.6700,
	"ZQM5": 95.6700,
	"ZQN5": 95.6700,
	"ZQQ5": 95.6700,
	"ZQU5": 95.7750,
	"ZQV5": 95.9125,
	"ZQX5": 96.1225,
	"ZQZ5": 96.2790,
}

// Official2025 returns the reference map for a contract type code prefix.
func Official2025(prefix string) map[string]float64 {
	switch prefix {
	case "SR3":
		return OfficialSR3_2025
	case "SR1":
		return OfficialSR1_2025
	case "ZQ":
		return OfficialZQ_2025
	}
	return nil
}
