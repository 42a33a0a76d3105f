package catalog

// BlockedCountries is the pool the blocked-countries screen picks from.
var BlockedCountries = []string{
	"Afghanistan", "Belarus", "Bonaire", "Canada", "Germany", "Spain",
	"Vietnam", "China", "United States", "United Kingdom", "France", "Japan",
	"Italy", "Australia", "Brazil", "India", "Mexico", "South Korea",
	"Russia", "Netherlands", "Sweden", "Switzerland", "Poland",
}

// PlatformCountries is the pool for the technology platform matrix.
var PlatformCountries = BlockedCountries[:20:20]

// BrokerCountries is the pool for the technology broker matrix.
var BrokerCountries = []string{
	"Algeria", "Argentina", "Austria", "Bahrain", "Bolivia", "Brazil",
	"Chile", "Germany", "Spain", "Vietnam", "China", "United States",
	"United Kingdom", "France", "Japan", "Italy", "Australia", "India",
	"Mexico", "South Korea",
}
