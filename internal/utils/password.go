package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash of the plain-text password at
// the given cost. Cost comes from configuration so tests can run at
// bcrypt's minimum while production pays for a slow hash.
func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt
// hash. Every failure mode reads as a mismatch, so a login error
// never reveals whether the email or the password was wrong.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
