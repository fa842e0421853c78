package processor

import (
	"bytes"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processTransfer moves tokens between two accounts of the same mint.
// It backs both Transfer and TransferChecked; the checked form carries the
// mint account and the expected decimals.
//
// A self-transfer (the same account handle in both slots) is validated in
// full but mutates nothing.
func processTransfer(accounts []*program.AccountInfo, amount uint64, expectedDecimals *byte) error {
	var sourceInfo, mintInfo, destinationInfo, authorityInfo *program.AccountInfo
	var remaining []*program.AccountInfo

	if expectedDecimals != nil {
		if len(accounts) < 4 {
			return program.ErrNotEnoughAccountKeys
		}
		sourceInfo, mintInfo, destinationInfo, authorityInfo, remaining = accounts[0], accounts[1], accounts[2], accounts[3], accounts[4:]
	} else {
		if len(accounts) < 3 {
			return program.ErrNotEnoughAccountKeys
		}
		sourceInfo, destinationInfo, authorityInfo, remaining = accounts[0], accounts[1], accounts[2], accounts[3:]
	}

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}
	destination, err := loadAccount(destinationInfo)
	if err != nil {
		return err
	}

	if source.IsFrozen() || destination.IsFrozen() {
		return token.ErrorAccountFrozen
	}

	// The remaining amount doubles as the sufficient-funds check; the
	// account is only updated if the whole transfer succeeds.
	if source.Amount < amount {
		return token.ErrorInsufficientFunds
	}
	remainingAmount := source.Amount - amount

	if !bytes.Equal(source.Mint, destination.Mint) {
		return token.ErrorMintMismatch
	}

	if expectedDecimals != nil {
		if !bytes.Equal(mintInfo.Key, source.Mint) {
			return token.ErrorMintMismatch
		}
		mint, err := loadMint(mintInfo)
		if err != nil {
			return err
		}
		if *expectedDecimals != mint.Decimals {
			return token.ErrorMintDecimalsMismatch
		}
	}

	// Aliasing is detected by handle identity, not key comparison: the
	// host hands out one handle per underlying account.
	selfTransfer := sourceInfo == destinationInfo

	if source.Delegate != nil && bytes.Equal(source.Delegate, authorityInfo.Key) {
		if err := validateOwner(source.Delegate, authorityInfo, remaining); err != nil {
			return err
		}

		if source.DelegatedAmount < amount {
			return token.ErrorInsufficientFunds
		}

		if !selfTransfer {
			source.DelegatedAmount -= amount
			if source.DelegatedAmount == 0 {
				source.Delegate = nil
			}
		}
	} else {
		if err := validateOwner(source.Owner, authorityInfo, remaining); err != nil {
			return err
		}
	}

	if selfTransfer || amount == 0 {
		// Nothing is written on this path, so the host would not catch
		// an imposter blob: assert ownership explicitly.
		if err := checkAccountOwner(sourceInfo); err != nil {
			return err
		}
		return checkAccountOwner(destinationInfo)
	}

	source.Amount = remainingAmount
	if destination.Amount, err = checkedAdd(destination.Amount, amount); err != nil {
		return err
	}

	if source.IsNative != nil {
		if sourceInfo.Lamports, err = checkedSub(sourceInfo.Lamports, amount); err != nil {
			return err
		}
		if destinationInfo.Lamports, err = checkedAdd(destinationInfo.Lamports, amount); err != nil {
			return err
		}
	}

	storeAccount(sourceInfo, source)
	storeAccount(destinationInfo, destination)
	return nil
}
