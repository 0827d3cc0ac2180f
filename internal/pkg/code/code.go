package code

import "crypto/rand"

// Length of a reservation code. Short enough to read over the radio,
// long enough that collisions stay rare (36^6 ≈ 2.2e9).
const Length = 6

const charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generate returns a random uppercase alphanumeric reservation code.
// Uniqueness is not guaranteed here — the caller must treat a duplicate
// insert as retryable.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = charset[int(buf[i])%len(charset)]
	}
	return string(buf), nil
}
