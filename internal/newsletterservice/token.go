package newsletterservice

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
)

func hashToken(token string) []byte {
	hash := sha256.Sum256([]byte(token))
	return hash[:]
}

// newToken returns a random unsubscribe token and the hash stored for it.
func newToken() (string, []byte, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", nil, err
	}

	plain := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)

	return plain, hashToken(plain), nil
}
