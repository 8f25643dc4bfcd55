package digest

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Blake2b is keyed BLAKE2b-256 printed as lowercase hex. The key is the
// seed as 8 big-endian bytes.
type Blake2b struct{}

// Name returns "blake2b".
func (Blake2b) Name() string { return "blake2b" }

// Digest returns the hex BLAKE2b-256 MAC of data keyed by seed.
func (Blake2b) Digest(data []byte, seed int64) string {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(seed))

	h, err := blake2b.New256(key[:])
	if err != nil {
		// Only returned for keys longer than 64 bytes.
		panic("digest: " + err.Error())
	}
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
