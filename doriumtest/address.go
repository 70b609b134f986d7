package doriumtest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/apeunit/dorium-contracts"
)

var addressCounter uint64

// NewAddress returns a new unique address. Generated addresses are
// valid but do not belong to any known key.
func NewAddress() dorium.Address {
	n := atomic.AddUint64(&addressCounter, 1)
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return dorium.NewAddress(b)
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is
// using dorium.ParseAddress functionality.
func ParseAddress(t testing.TB, encodedAddress string) dorium.Address {
	t.Helper()

	addr, err := dorium.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
