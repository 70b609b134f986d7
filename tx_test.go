package dorium

import (
	"encoding/json"
	"testing"

	"github.com/apeunit/dorium-contracts/doriumtest/assert"
	"github.com/apeunit/dorium-contracts/errors"
)

func TestNewAddress(t *testing.T) {
	a := NewAddress([]byte("some pubkey material"))
	assert.Nil(t, a.Validate())
	assert.Equal(t, AddressLength, len(a))

	b := NewAddress([]byte("other pubkey material"))
	if a.Equals(b) {
		t.Fatal("different input must produce different addresses")
	}
	assert.Equal(t, a, a.Clone())
}

func TestAddressJSON(t *testing.T) {
	a := NewAddress([]byte("foo"))

	bz, err := json.Marshal(a)
	assert.Nil(t, err)
	assert.Equal(t, `"`+a.String()+`"`, string(bz))

	var parsed Address
	assert.Nil(t, json.Unmarshal(bz, &parsed))
	assert.Equal(t, a, parsed)
}

func TestParseAddress(t *testing.T) {
	a := NewAddress([]byte("foo"))

	parsed, err := ParseAddress(a.String())
	assert.Nil(t, err)
	assert.Equal(t, a, parsed)

	// lower case hex is accepted as well
	lower, err := ParseAddress("0102030405060708090a0b0c0d0e0f1011121314")
	assert.Nil(t, err)
	assert.Nil(t, lower.Validate())

	cases := map[string]string{
		"not hex":      "zzzz",
		"odd length":   "012",
		"wrong length": "0102030405",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAddress(in)
			assert.IsErr(t, errors.ErrInput, err)
		})
	}
}

func TestAddressValidate(t *testing.T) {
	assert.IsErr(t, errors.ErrInput, Address(nil).Validate())
	assert.IsErr(t, errors.ErrInput, Address([]byte{1, 2, 3}).Validate())
	assert.Nil(t, NewAddress(nil).Validate())
}
