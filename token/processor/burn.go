package processor

import (
	"bytes"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processBurn removes tokens from a source account and shrinks the mint's
// supply. It backs both Burn and BurnChecked.
//
// Accounts whose owner field is the system program or the incinerator may
// be burned from by anyone; they hold no recoverable authority.
func processBurn(accounts []*program.AccountInfo, amount uint64, expectedDecimals *byte) error {
	if len(accounts) < 3 {
		return program.ErrNotEnoughAccountKeys
	}
	sourceInfo, mintInfo, authorityInfo, remaining := accounts[0], accounts[1], accounts[2], accounts[3:]

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}

	if source.IsFrozen() {
		return token.ErrorAccountFrozen
	}
	if source.IsNative != nil {
		return token.ErrorNativeNotSupported
	}

	if source.Amount < amount {
		return token.ErrorInsufficientFunds
	}
	updatedSourceAmount := source.Amount - amount

	mint, err := loadMint(mintInfo)
	if err != nil {
		return err
	}

	if !bytes.Equal(mintInfo.Key, source.Mint) {
		return token.ErrorMintMismatch
	}
	if expectedDecimals != nil && *expectedDecimals != mint.Decimals {
		return token.ErrorMintDecimalsMismatch
	}

	if !source.IsOwnedBySystemProgramOrIncinerator() {
		if source.Delegate != nil && bytes.Equal(source.Delegate, authorityInfo.Key) {
			if err := validateOwner(source.Delegate, authorityInfo, remaining); err != nil {
				return err
			}

			if source.DelegatedAmount < amount {
				return token.ErrorInsufficientFunds
			}
			source.DelegatedAmount -= amount
			if source.DelegatedAmount == 0 {
				source.Delegate = nil
			}
		} else {
			if err := validateOwner(source.Owner, authorityInfo, remaining); err != nil {
				return err
			}
		}
	}

	if amount == 0 {
		if err := checkAccountOwner(sourceInfo); err != nil {
			return err
		}
		if err := checkAccountOwner(mintInfo); err != nil {
			return err
		}
	}

	source.Amount = updatedSourceAmount
	if mint.Supply, err = checkedSub(mint.Supply, amount); err != nil {
		return err
	}

	storeAccount(sourceInfo, source)
	storeMint(mintInfo, mint)
	return nil
}
