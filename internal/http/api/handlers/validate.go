package handlers

import "regexp"

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	countryRe  = regexp.MustCompile(`^[a-zA-Z\s-]+$`)
)

// validUsername reports whether the username is 3-20 characters of letters,
// digits, underscore, or hyphen.
func validUsername(username string) bool {
	if len(username) < 3 || len(username) > 20 {
		return false
	}
	return usernameRe.MatchString(username)
}

// validPassword reports whether the password length is within bounds.
func validPassword(password string) bool {
	return len(password) >= 6 && len(password) <= 128
}

// validCountry reports whether the country is 2-50 characters of letters,
// spaces, or hyphens.
func validCountry(country string) bool {
	if len(country) < 2 || len(country) > 50 {
		return false
	}
	return countryRe.MatchString(country)
}
