package keygen

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// KeyLength is the fixed length of every generated app key.
const KeyLength = 32

// Generate returns a 32-character alphanumeric key from crypto/rand.
// App keys act as credentials, so a CSPRNG is used rather than math/rand.
func Generate() (string, error) {
	key := make([]byte, 0, KeyLength)
	buf := make([]byte, KeyLength)

	for len(key) < KeyLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			// Reject bytes above the largest multiple of 62 to keep
			// the distribution uniform over the alphabet.
			if b >= 248 {
				continue
			}
			key = append(key, alphabet[int(b)%len(alphabet)])
			if len(key) == KeyLength {
				break
			}
		}
	}

	return string(key), nil
}
