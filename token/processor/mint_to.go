package processor

import (
	"bytes"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processMintTo mints new tokens into a destination account and grows the
// mint's supply. It backs both MintTo and MintToChecked.
func processMintTo(accounts []*program.AccountInfo, amount uint64, expectedDecimals *byte) error {
	if len(accounts) < 3 {
		return program.ErrNotEnoughAccountKeys
	}
	mintInfo, destinationInfo, ownerInfo, remaining := accounts[0], accounts[1], accounts[2], accounts[3:]

	destination, err := loadAccount(destinationInfo)
	if err != nil {
		return err
	}

	if destination.IsFrozen() {
		return token.ErrorAccountFrozen
	}
	if destination.IsNative != nil {
		return token.ErrorNativeNotSupported
	}
	if !bytes.Equal(mintInfo.Key, destination.Mint) {
		return token.ErrorMintMismatch
	}

	mint, err := loadMint(mintInfo)
	if err != nil {
		return err
	}
	if expectedDecimals != nil && *expectedDecimals != mint.Decimals {
		return token.ErrorMintDecimalsMismatch
	}

	if mint.MintAuthority == nil {
		return token.ErrorFixedSupply
	}
	if err := validateOwner(mint.MintAuthority, ownerInfo, remaining); err != nil {
		return err
	}

	if amount == 0 {
		if err := checkAccountOwner(mintInfo); err != nil {
			return err
		}
		if err := checkAccountOwner(destinationInfo); err != nil {
			return err
		}
	}

	if destination.Amount, err = checkedAdd(destination.Amount, amount); err != nil {
		return err
	}
	if mint.Supply, err = checkedAdd(mint.Supply, amount); err != nil {
		return err
	}

	storeAccount(destinationInfo, destination)
	storeMint(mintInfo, mint)
	return nil
}
