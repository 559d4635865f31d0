package utils

import "strings"

// Messages the frontend matches on, split the way the legacy API split them.
const (
	MsgIncorrectForm = "Incorrect form."
	MsgIncorrectInfo = "Incorrect info."
)

// InvalidField reports whether a free-text field must be rejected: empty, or
// containing the '{' character the legacy API disallowed. Parameterized
// queries already neutralize injection; this check is kept for contract
// fidelity only.
func InvalidField(s string) bool {
	return s == "" || strings.ContainsRune(s, '{')
}

// AnyInvalidField applies InvalidField across a whole form.
func AnyInvalidField(fields ...string) bool {
	for _, f := range fields {
		if InvalidField(f) {
			return true
		}
	}
	return false
}
