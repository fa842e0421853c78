package program

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
)

// ProgramKey is the address of the token program.
//
// Current key: TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA
var ProgramKey ed25519.PublicKey

// NativeMint is the mint address of the wrapped native token.
//
// Token accounts for this mint shadow the lamport balance of the
// account that holds them.
//
// Current key: So11111111111111111111111111111111111111112
var NativeMint ed25519.PublicKey

// Incinerator is the burn sink address. Token accounts owned by it (or by
// the system program) may be burned from and closed by anyone, provided the
// reclaimed lamports are also incinerated.
//
// Current key: 1nc1nerator11111111111111111111111111111111
var Incinerator ed25519.PublicKey

// SystemProgram is the address of the system program, which creates and
// funds the raw account blobs this program initializes.
var SystemProgram ed25519.PublicKey

// RentSysVar points to the system variable "Rent".
var RentSysVar ed25519.PublicKey

func init() {
	for _, k := range []struct {
		dst *ed25519.PublicKey
		b58 string
	}{
		{&ProgramKey, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"},
		{&NativeMint, "So11111111111111111111111111111111111111112"},
		{&Incinerator, "1nc1nerator11111111111111111111111111111111"},
		{&SystemProgram, "11111111111111111111111111111111"},
		{&RentSysVar, "SysvarRent111111111111111111111111111111111"},
	} {
		key, err := base58.Decode(k.b58)
		if err != nil {
			panic(err)
		}
		*k.dst = key
	}
}
