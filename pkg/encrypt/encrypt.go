package encrypt

import (
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(value string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
	return string(hash)
}

func VerifyPassword(hash string, value string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(value)) == nil
}
