package processor

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processGetAccountDataSize writes the token account blob length into the
// host's return-data slot.
func processGetAccountDataSize(host Host, accounts []*program.AccountInfo) error {
	if len(accounts) < 1 {
		return program.ErrNotEnoughAccountKeys
	}
	mintInfo := accounts[0]

	if err := checkAccountOwner(mintInfo); err != nil {
		return err
	}
	if _, err := loadMint(mintInfo); err != nil {
		return token.ErrorInvalidMint
	}

	size := make([]byte, 8)
	binary.LittleEndian.PutUint64(size, token.AccountSize)
	host.SetReturnData(size)
	return nil
}

// processInitializeImmutableOwner accepts the instruction on uninitialized
// accounts for protocol compatibility; the flag itself is only meaningful
// in the successor program.
func processInitializeImmutableOwner(accounts []*program.AccountInfo) error {
	if len(accounts) < 1 {
		return program.ErrNotEnoughAccountKeys
	}

	account, err := loadAccountUnchecked(accounts[0])
	if err != nil {
		return err
	}
	if account.IsInitialized() {
		return token.ErrorAlreadyInUse
	}

	program.Log("Please upgrade to SPL Token 2022 for immutable owner support")
	return nil
}

// processAmountToUiAmount renders a raw amount using the mint's decimals
// and writes the string into the return-data slot.
func processAmountToUiAmount(host Host, accounts []*program.AccountInfo, data []byte) error {
	amount, err := unpackAmount(data)
	if err != nil {
		return err
	}

	if len(accounts) < 1 {
		return program.ErrNotEnoughAccountKeys
	}
	mintInfo := accounts[0]

	if err := checkAccountOwner(mintInfo); err != nil {
		return err
	}
	mint, err := loadMint(mintInfo)
	if err != nil {
		return token.ErrorInvalidMint
	}

	host.SetReturnData([]byte(token.AmountToUiAmount(amount, mint.Decimals)))
	return nil
}

// processUiAmountToAmount parses a decimal string using the mint's decimals
// and writes the raw amount into the return-data slot.
func processUiAmountToAmount(host Host, accounts []*program.AccountInfo, data []byte) error {
	if !utf8.Valid(data) {
		return program.ErrInvalidInstructionData
	}
	uiAmount := string(data)

	if len(accounts) < 1 {
		return program.ErrNotEnoughAccountKeys
	}
	mintInfo := accounts[0]

	if err := checkAccountOwner(mintInfo); err != nil {
		return err
	}
	mint, err := loadMint(mintInfo)
	if err != nil {
		return token.ErrorInvalidMint
	}

	amount, err := token.UiAmountToAmount(uiAmount, mint.Decimals)
	if err != nil {
		return err
	}

	raw := make([]byte, 8)
	binary.LittleEndian.PutUint64(raw, amount)
	host.SetReturnData(raw)
	return nil
}
