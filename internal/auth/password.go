package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
)

// saltLength matches the SHA-512 block-sized key used upstream.
const saltLength = 64

// HashPassword derives a keyed hash of the plaintext password. The HMAC
// key is generated per user and returned as the salt; both values are
// stored on the user row.
func HashPassword(password string) (hash, salt []byte, err error) {
	salt = make([]byte, saltLength)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, err
	}

	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil), salt, nil
}

// VerifyPassword recomputes the keyed hash with the stored salt and
// compares it to the stored hash in constant time.
func VerifyPassword(password string, hash, salt []byte) bool {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), hash)
}
