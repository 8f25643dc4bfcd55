package digest

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Cyrb53 is the cyrb53 string hash, a 53-bit value printed in decimal.
//
// The input is hashed as a sequence of UTF-16 code units, as JavaScript
// strings are, and the seed is truncated to 32 bits. For ASCII input such
// as a PNG data URL this is one unit per byte.
type Cyrb53 struct{}

// Name returns "cyrb53".
func (Cyrb53) Name() string { return "cyrb53" }

// Digest returns the decimal cyrb53 hash of data.
func (Cyrb53) Digest(data []byte, seed int64) string {
	return strconv.FormatUint(Sum53(data, seed), 10)
}

// Sum53 returns the cyrb53 hash of data.
func Sum53(data []byte, seed int64) uint64 {
	s := uint32(seed)
	h1 := 0xdeadbeef ^ s
	h2 := 0x41c6ce57 ^ s

	mix := func(ch uint32) {
		h1 = (h1 ^ ch) * 2654435761
		h2 = (h2 ^ ch) * 1597334677
	}
	if isASCII(data) {
		for _, b := range data {
			mix(uint32(b))
		}
	} else {
		for _, u := range utf16.Encode([]rune(string(data))) {
			mix(uint32(u))
		}
	}

	h1 = (h1 ^ h1>>16) * 2246822507
	h1 ^= (h2 ^ h2>>13) * 3266489909
	h2 = (h2 ^ h2>>16) * 2246822507
	h2 ^= (h1 ^ h1>>13) * 3266489909

	return uint64(h2&0x1FFFFF)<<32 | uint64(h1)
}

func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
