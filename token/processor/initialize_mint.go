package processor

import (
	"crypto/ed25519"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processInitializeMint initializes a mint blob.
//
// Accounts: [writable mint] plus, for the original variant, the rent
// sysvar account. The InitializeMint2 variant reads rent from the host
// instead.
func processInitializeMint(host Host, accounts []*program.AccountInfo, data []byte, rentSysvarAccount bool) error {
	decimals, mintAuthority, freezeAuthority, err := unpackInitializeMint(data)
	if err != nil {
		return err
	}

	var mintInfo *program.AccountInfo
	var rent program.Rent
	if rentSysvarAccount {
		if len(accounts) < 2 {
			return program.ErrNotEnoughAccountKeys
		}
		mintInfo = accounts[0]
		if rent, err = program.RentFromAccountInfo(accounts[1]); err != nil {
			return err
		}
	} else {
		if len(accounts) < 1 {
			return program.ErrNotEnoughAccountKeys
		}
		mintInfo = accounts[0]
		rent = host.Rent()
	}

	mint, err := loadMintUnchecked(mintInfo)
	if err != nil {
		return err
	}
	if mint.IsInitialized {
		return token.ErrorAlreadyInUse
	}

	if !rent.IsExempt(mintInfo.Lamports, token.MintSize) {
		return token.ErrorNotRentExempt
	}

	mint.IsInitialized = true
	mint.MintAuthority = mintAuthority
	mint.Decimals = decimals
	mint.FreezeAuthority = freezeAuthority
	storeMint(mintInfo, mint)

	return nil
}

// unpackInitializeMint parses the trailing bytes of InitializeMint[2]:
// decimals, the mint authority, and a tagged optional freeze authority.
// The data is 34 bytes with tag 0, or 66 with tag 1.
func unpackInitializeMint(data []byte) (decimals byte, mintAuthority, freezeAuthority ed25519.PublicKey, err error) {
	switch {
	case len(data) == 34 && data[33] == 0:
	case len(data) == 66 && data[33] == 1:
		freezeAuthority = ed25519.PublicKey(data[34:66])
	default:
		return 0, nil, nil, program.ErrInvalidInstructionData
	}

	return data[0], ed25519.PublicKey(data[1:33]), freezeAuthority, nil
}
