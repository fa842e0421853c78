package program

import (
	"bytes"
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
)

// AccountInfo is the handle the host supplies for each account referenced by
// an instruction. Handlers mutate Data, Lamports, and Owner in place; the
// host commits or discards the whole set atomically.
//
// The same underlying account always arrives as the same handle, even when
// it occupies several positional slots, so handle identity (pointer
// equality) is the aliasing check.
type AccountInfo struct {
	Key      ed25519.PublicKey
	Owner    ed25519.PublicKey
	Lamports uint64
	Data     []byte

	IsSigner   bool
	IsWritable bool
}

// IsOwnedBy reports whether the host-level owner of the account is key.
func (a *AccountInfo) IsOwnedBy(key ed25519.PublicKey) bool {
	return bytes.Equal(a.Owner, key)
}

func (a *AccountInfo) String() string {
	return base58.Encode(a.Key)
}
