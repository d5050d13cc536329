package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword runs bcrypt at the default cost. The returned digest embeds
// algorithm, cost and salt, so verification needs no external state.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
