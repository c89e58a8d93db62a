package patron

import "github.com/gregory-ai/cisc327-library-management-a2-3975/internal/apperr"

const (
	IDLength = 6

	invalidIDMessage = "Invalid patron ID. Must be exactly 6 digits."
)

// IsValidID reports whether id is a library card number: exactly six ASCII
// digits. Leading zeros are significant, so ids stay strings.
func IsValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}

func ValidateID(id string) error {
	if !IsValidID(id) {
		return apperr.Validation(apperr.CodeInvalidPatronID, invalidIDMessage)
	}
	return nil
}
