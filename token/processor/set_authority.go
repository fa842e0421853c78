package processor

import (
	"crypto/ed25519"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processSetAuthority rewrites one of the authorities of a mint or token
// account. The target entity is selected by blob length.
func processSetAuthority(accounts []*program.AccountInfo, data []byte) error {
	authorityType, newAuthority, err := unpackSetAuthority(data)
	if err != nil {
		return err
	}

	if len(accounts) < 2 {
		return program.ErrNotEnoughAccountKeys
	}
	accountInfo, authorityInfo, remaining := accounts[0], accounts[1], accounts[2:]

	switch len(accountInfo.Data) {
	case token.AccountSize:
		account, err := loadAccount(accountInfo)
		if err != nil {
			return err
		}

		if account.IsFrozen() {
			return token.ErrorAccountFrozen
		}

		switch authorityType {
		case token.AuthorityTypeAccountOwner:
			if err := validateOwner(account.Owner, authorityInfo, remaining); err != nil {
				return err
			}
			if newAuthority == nil {
				return token.ErrorInvalidInstruction
			}
			account.Owner = newAuthority

			account.Delegate = nil
			account.DelegatedAmount = 0
			if account.IsNative != nil {
				account.CloseAuthority = nil
			}
		case token.AuthorityTypeCloseAccount:
			authority := account.CloseAuthority
			if authority == nil {
				authority = account.Owner
			}
			if err := validateOwner(authority, authorityInfo, remaining); err != nil {
				return err
			}
			account.CloseAuthority = newAuthority
		default:
			return token.ErrorAuthorityTypeNotSupported
		}

		storeAccount(accountInfo, account)
		return nil

	case token.MintSize:
		mint, err := loadMint(accountInfo)
		if err != nil {
			return err
		}

		switch authorityType {
		case token.AuthorityTypeMintTokens:
			// Once the supply is fixed it cannot be unfixed by installing
			// a new mint authority.
			if mint.MintAuthority == nil {
				return token.ErrorFixedSupply
			}
			if err := validateOwner(mint.MintAuthority, authorityInfo, remaining); err != nil {
				return err
			}
			mint.MintAuthority = newAuthority
		case token.AuthorityTypeFreezeAccount:
			// Likewise, a disabled freeze authority stays disabled.
			if mint.FreezeAuthority == nil {
				return token.ErrorMintCannotFreeze
			}
			if err := validateOwner(mint.FreezeAuthority, authorityInfo, remaining); err != nil {
				return err
			}
			mint.FreezeAuthority = newAuthority
		default:
			return token.ErrorAuthorityTypeNotSupported
		}

		storeMint(accountInfo, mint)
		return nil
	}

	return program.ErrInvalidArgument
}

// unpackSetAuthority parses the authority type plus the tagged optional new
// authority. The data is 2 bytes with tag 0, or 34 with tag 1.
func unpackSetAuthority(data []byte) (token.AuthorityType, ed25519.PublicKey, error) {
	switch {
	case len(data) == 2 && data[1] == 0:
		return token.AuthorityType(data[0]), nil, nil
	case len(data) == 34 && data[1] == 1:
		return token.AuthorityType(data[0]), ed25519.PublicKey(data[2:34]), nil
	}
	return 0, nil, program.ErrInvalidInstructionData
}
