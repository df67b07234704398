package holiday

import "time"

// DateLayout is the ISO 8601 calendar date format used by the upstream API.
const DateLayout = "2006-01-02"

// Holiday is a single public holiday entry as returned by Nager.Date.
// Field names are matched case-insensitively when decoding.
type Holiday struct {
	Date        string `json:"date"`
	LocalName   string `json:"localName"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	IsFixed     bool   `json:"fixed"`
	IsGlobal    bool   `json:"global"`
}

// ParseDate parses an ISO calendar date. ok is false when s is not a valid date.
func ParseDate(s string) (t time.Time, ok bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
