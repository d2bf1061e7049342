package domain

import "regexp"

var (
	datePattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(0[1-9]|[12][0-9]|3[01])/(19|20)\d{2}$`)
	timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)
	namePattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// IsValidDate reports whether text is MM/DD/YYYY with a year in 1900-2099.
// Day and month are range-checked independently, so 02/30/2024 passes.
func IsValidDate(text string) bool {
	return datePattern.MatchString(text)
}

// IsValidTime reports whether text is a 24-hour HH:MM clock time.
func IsValidTime(text string) bool {
	return timePattern.MatchString(text)
}

// IsValidPersonName reports whether text is one or more ASCII letters.
func IsValidPersonName(text string) bool {
	return namePattern.MatchString(text)
}
