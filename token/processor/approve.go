package processor

import (
	"bytes"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processApprove delegates spending of up to amount tokens. It backs both
// Approve and ApproveChecked.
func processApprove(accounts []*program.AccountInfo, amount uint64, expectedDecimals *byte) error {
	var sourceInfo, mintInfo, delegateInfo, ownerInfo *program.AccountInfo
	var remaining []*program.AccountInfo

	if expectedDecimals != nil {
		if len(accounts) < 4 {
			return program.ErrNotEnoughAccountKeys
		}
		sourceInfo, mintInfo, delegateInfo, ownerInfo, remaining = accounts[0], accounts[1], accounts[2], accounts[3], accounts[4:]
	} else {
		if len(accounts) < 3 {
			return program.ErrNotEnoughAccountKeys
		}
		sourceInfo, delegateInfo, ownerInfo, remaining = accounts[0], accounts[1], accounts[2], accounts[3:]
	}

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}

	if source.IsFrozen() {
		return token.ErrorAccountFrozen
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

	if err := validateOwner(source.Owner, ownerInfo, remaining); err != nil {
		return err
	}

	source.Delegate = delegateInfo.Key
	source.DelegatedAmount = amount

	storeAccount(sourceInfo, source)
	return nil
}

// processRevoke clears the delegate of a token account.
func processRevoke(accounts []*program.AccountInfo) error {
	if len(accounts) < 2 {
		return program.ErrNotEnoughAccountKeys
	}
	sourceInfo, ownerInfo, remaining := accounts[0], accounts[1], accounts[2:]

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}

	if source.IsFrozen() {
		return token.ErrorAccountFrozen
	}

	if err := validateOwner(source.Owner, ownerInfo, remaining); err != nil {
		return err
	}

	source.Delegate = nil
	source.DelegatedAmount = 0

	storeAccount(sourceInfo, source)
	return nil
}
