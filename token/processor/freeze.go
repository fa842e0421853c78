package processor

import (
	"bytes"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processToggleFreeze freezes or thaws a token account under the mint's
// freeze authority.
func processToggleFreeze(accounts []*program.AccountInfo, freeze bool) error {
	if len(accounts) < 3 {
		return program.ErrNotEnoughAccountKeys
	}
	sourceInfo, mintInfo, authorityInfo, remaining := accounts[0], accounts[1], accounts[2], accounts[3:]

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}

	if freeze == source.IsFrozen() {
		return token.ErrorInvalidState
	}
	if source.IsNative != nil {
		return token.ErrorNativeNotSupported
	}
	if !bytes.Equal(mintInfo.Key, source.Mint) {
		return token.ErrorMintMismatch
	}

	mint, err := loadMint(mintInfo)
	if err != nil {
		return err
	}
	if mint.FreezeAuthority == nil {
		return token.ErrorMintCannotFreeze
	}
	if err := validateOwner(mint.FreezeAuthority, authorityInfo, remaining); err != nil {
		return err
	}

	if freeze {
		source.State = token.AccountStateFrozen
	} else {
		source.State = token.AccountStateInitialized
	}

	storeAccount(sourceInfo, source)
	return nil
}
