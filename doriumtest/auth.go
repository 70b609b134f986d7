package doriumtest

import (
	"context"
	"fmt"

	"github.com/apeunit/dorium-contracts"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the referenced addresses. You
// can use either Signer or Signers (or both) attributes. This is for
// the convenience and each time all signers (regardless which
// attribute) are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is a
	// convenience attribute when creating an authentication method for a
	// single signer.
	Signer dorium.Address

	// Signers represents an authentication of multiple signers.
	Signers []dorium.Address
}

func (a *Auth) GetAddresses(dorium.Context) []dorium.Address {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx dorium.Context, addr dorium.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer)
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve the
// authenticated addresses.
type CtxAuth struct {
	// Key used to set and retrieve addresses from the context. For
	// convenience only string type keys are allowed.
	Key string
}

type ctxAuthKey string

func (a *CtxAuth) SetSigners(ctx dorium.Context, signers ...dorium.Address) dorium.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), signers)
}

func (a *CtxAuth) GetAddresses(ctx dorium.Context) []dorium.Address {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	addrs, ok := val.([]dorium.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []dorium.Address got %T", val))
	}
	return addrs
}

func (a *CtxAuth) HasAddress(ctx dorium.Context, addr dorium.Address) bool {
	for _, s := range a.GetAddresses(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
