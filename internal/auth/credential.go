package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// CredentialDigest derives the secret credential of an access key from its
// id, the owning user's id and the key's seed. The result is handed to the
// key holder and never stored.
func CredentialDigest(keyID int64, userID string, seed int64) string {
	var buf [8]byte
	h, _ := blake2b.New256(nil) // unkeyed New256 cannot fail

	binary.BigEndian.PutUint64(buf[:], uint64(keyID))
	h.Write(buf[:])
	h.Write([]byte(userID))
	binary.BigEndian.PutUint64(buf[:], uint64(seed))
	h.Write(buf[:])

	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// DigestEqual compares two credentials in constant time.
func DigestEqual(want, got string) bool {
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// NewSeed returns a random non-negative key seed.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("generate seed: %w", err)
	}
	return int64(binary.BigEndian.Uint64(b[:]) >> 1), nil
}
