package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Calendar dates travel as YYYY-MM-DD strings
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ValidateCityName validates an origin or destination city name. Empty
// names are rejected; the resolver contract requires a non-empty
// identifying argument.
func ValidateCityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("city name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("city name too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("city name contains invalid characters")
	}

	return nil
}

// ValidateDate validates a YYYY-MM-DD date string. Empty dates are
// allowed; endpoints where the date is required check that separately.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}

	if !datePattern.MatchString(date) {
		return errors.New("date must be in YYYY-MM-DD format")
	}

	return nil
}

// ValidatePassengers validates a passenger count.
func ValidatePassengers(count int) error {
	if count < 1 {
		return errors.New("passenger count must be at least 1")
	}

	// Nobody books a whole fleet through the app.
	if count > 50 {
		return errors.New("passenger count too large (max 50)")
	}

	return nil
}

// ValidateMonth validates a YYYY-MM month string. Empty is allowed.
func ValidateMonth(month string) error {
	if month == "" {
		return nil
	}

	if !monthPattern.MatchString(month) {
		return errors.New("month must be in YYYY-MM format")
	}

	return nil
}
