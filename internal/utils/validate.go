package utils

import "regexp"

// Dialing area codes with dedicated phone number formats.
const (
	// AreaChina is the dialing code for mainland China.
	AreaChina = "86"
	// AreaBrazil is the dialing code for Brazil.
	AreaBrazil = "55"
)

//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var (
	// chinaPhonePattern matches mainland China mobile numbers: 11 digits starting 13-19.
	chinaPhonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

	// brazilPhonePattern matches Brazilian mobile numbers: 9 digits starting 8 or 9.
	brazilPhonePattern = regexp.MustCompile(`^[89]\d{8}$`)

	// emailPattern is a pragmatic email shape check, not a full RFC 5322 parser.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidPhone reports whether phone matches the mobile number format of the
// given dialing area. Areas without a known format are rejected.
func IsValidPhone(area, phone string) bool {
	switch area {
	case AreaChina:
		return chinaPhonePattern.MatchString(phone)
	case AreaBrazil:
		return brazilPhonePattern.MatchString(phone)
	default:
		return false
	}
}

// IsValidEmail reports whether the string looks like an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
