package util

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes a plaintext password. The digest embeds the
// algorithm, cost and salt, so a future verify path needs no schema change.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword reports whether the plaintext matches the stored digest.
// No endpoint calls this yet; login is out of scope.
func ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
