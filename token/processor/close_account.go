package processor

import (
	"bytes"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processCloseAccount drains all lamports of a token account into the
// destination and releases the blob back to the system program. Non-native
// accounts must be empty; native accounts carry their balance out as
// lamports.
func processCloseAccount(accounts []*program.AccountInfo) error {
	if len(accounts) < 3 {
		return program.ErrNotEnoughAccountKeys
	}
	sourceInfo, destinationInfo, authorityInfo, remaining := accounts[0], accounts[1], accounts[2], accounts[3:]

	if bytes.Equal(sourceInfo.Key, destinationInfo.Key) {
		return program.ErrInvalidAccountData
	}

	source, err := loadAccount(sourceInfo)
	if err != nil {
		return err
	}
	if source.IsNative == nil && source.Amount != 0 {
		return token.ErrorNonNativeHasBalance
	}

	if !source.IsOwnedBySystemProgramOrIncinerator() {
		authority := source.CloseAuthority
		if authority == nil {
			authority = source.Owner
		}
		if err := validateOwner(authority, authorityInfo, remaining); err != nil {
			return err
		}
	} else if !bytes.Equal(destinationInfo.Key, program.Incinerator) {
		// Lamports reclaimed from an ownerless account must burn.
		return program.ErrInvalidAccountData
	}

	if destinationInfo.Lamports, err = checkedAdd(destinationInfo.Lamports, sourceInfo.Lamports); err != nil {
		return err
	}
	sourceInfo.Lamports = 0

	// Release the blob; the host deallocates at transaction commit.
	sourceInfo.Owner = program.SystemProgram
	sourceInfo.Data = nil

	return nil
}
