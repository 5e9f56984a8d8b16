package holiday

import "time"

// DateLayout is the ISO calendar date format used for holiday entries.
const DateLayout = "2006-01-02"

// Entry is one holiday in the static per-country reference data.
// AffectsAll is true when the holiday typically closes every location of
// every brand in that country; false means only some locations observe it.
type Entry struct {
	Date        string `json:"date"` // ISO calendar date, no time component
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	AffectsAll  bool   `json:"affects_all"`
}

// Day parses the entry's calendar date as midnight UTC.
func (e Entry) Day() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}
