package calendar

// usGovtHolidayList covers 2024 through 2027, the span the model prices over
// (contract reference periods for late-2026 SR3 reach into early 2027).
// Observed dates: Saturday holidays move to Friday, Sunday holidays to Monday.
var usGovtHolidayList = []string{
	// 2024
	"2024-01-01", // New Year's Day
	"2024-01-15", // Martin Luther King Jr. Day
	"2024-02-19", // Presidents Day
	"2024-03-29", // Good Friday
	"2024-05-27", // Memorial Day
	"2024-06-19", // Juneteenth
	"2024-07-04", // Independence Day
	"2024-09-02", // Labor Day
	"2024-10-14", // Columbus Day
	"2024-11-11", // Veterans Day
	"2024-11-28", // Thanksgiving Day
	"2024-12-25", // Christmas Day

	// 2025
	"2025-01-01",
	"2025-01-20",
	"2025-02-17",
	"2025-04-18",
	"2025-05-26",
	"2025-06-19",
	"2025-07-04",
	"2025-09-01",
	"2025-10-13",
	"2025-11-11",
	"2025-11-27",
	"2025-12-25",

	// 2026
	"2026-01-01",
	"2026-01-19",
	"2026-02-16",
	"2026-04-03",
	"2026-05-25",
	"2026-06-19",
	"2026-07-03", // Independence Day observed (Jul 4 falls on Saturday)
	"2026-09-07",
	"2026-10-12",
	"2026-11-11",
	"2026-11-26",
	"2026-12-25",

	// 2027
	"2027-01-01",
	"2027-01-18",
	"2027-02-15",
	"2027-03-26",
	"2027-05-31",
	"2027-06-18", // Juneteenth observed (Jun 19 falls on Saturday)
	"2027-07-05", // Independence Day observed (Jul 4 falls on Sunday)
	"2027-09-06",
	"2027-10-11",
	"2027-11-11",
	"2027-11-25",
	"2027-12-24", // Christmas observed (Dec 25 falls on Saturday)
}
