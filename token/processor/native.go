package processor

import (
	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processSyncNative reconciles the wrapped amount of a native token account
// with the account's lamport balance.
func processSyncNative(accounts []*program.AccountInfo) error {
	if len(accounts) < 1 {
		return program.ErrNotEnoughAccountKeys
	}
	nativeInfo := accounts[0]

	if err := checkAccountOwner(nativeInfo); err != nil {
		return err
	}

	account, err := loadAccount(nativeInfo)
	if err != nil {
		return err
	}
	if account.IsNative == nil {
		return token.ErrorNonNativeNotSupported
	}

	newAmount, err := checkedSub(nativeInfo.Lamports, *account.IsNative)
	if err != nil {
		return err
	}
	if newAmount < account.Amount {
		// Lamports left the account without going through the program.
		return token.ErrorInvalidState
	}
	account.Amount = newAmount

	storeAccount(nativeInfo, account)
	return nil
}

// processUnwrapLamports moves lamports out of a native token account,
// shrinking its wrapped balance. With no explicit amount the whole balance
// is unwrapped.
func processUnwrapLamports(accounts []*program.AccountInfo, data []byte) error {
	if len(data) < 1 {
		return token.ErrorInvalidInstruction
	}

	var maybeAmount *uint64
	switch data[0] {
	case 0:
	case 1:
		amount, err := unpackAmount(data[1:])
		if err != nil {
			return err
		}
		maybeAmount = &amount
	default:
		return token.ErrorInvalidInstruction
	}

	if len(accounts) < 3 {
		return program.ErrNotEnoughAccountKeys
	}
	sourceInfo, destinationInfo, authorityInfo, remaining := accounts[0], accounts[1], accounts[2], accounts[3:]

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}
	if source.IsNative == nil {
		return token.ErrorNonNativeNotSupported
	}

	if err := validateOwner(source.Owner, authorityInfo, remaining); err != nil {
		return err
	}

	var amount, remainingAmount uint64
	if maybeAmount != nil {
		amount = *maybeAmount
		if source.Amount < amount {
			return token.ErrorInsufficientFunds
		}
		remainingAmount = source.Amount - amount
	} else {
		amount = source.Amount
	}

	selfTransfer := sourceInfo == destinationInfo

	if selfTransfer || amount == 0 {
		return checkAccountOwner(sourceInfo)
	}

	source.Amount = remainingAmount
	storeAccount(sourceInfo, source)

	// The wrapped amount never exceeds the lamports on the account, and
	// the total lamport supply is bounded by the host.
	if sourceInfo.Lamports, err = checkedSub(sourceInfo.Lamports, amount); err != nil {
		return err
	}
	if destinationInfo.Lamports, err = checkedAdd(destinationInfo.Lamports, amount); err != nil {
		return err
	}

	return nil
}
