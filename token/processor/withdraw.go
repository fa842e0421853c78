package processor

import (
	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processWithdrawExcessLamports reclaims lamports above the rent-exempt
// reserve of a mint, token account, or multisig. The source entity is
// selected by blob length.
func processWithdrawExcessLamports(host Host, accounts []*program.AccountInfo) error {
	if len(accounts) < 3 {
		return program.ErrNotEnoughAccountKeys
	}
	sourceInfo, destinationInfo, authorityInfo, remaining := accounts[0], accounts[1], accounts[2], accounts[3:]

	switch len(sourceInfo.Data) {
	case token.AccountSize:
		account, err := loadAccount(sourceInfo)
		if err != nil {
			return err
		}
		if account.IsNative != nil {
			return token.ErrorNativeNotSupported
		}
		if err := validateOwner(account.Owner, authorityInfo, remaining); err != nil {
			return err
		}
	case token.MintSize:
		mint, err := loadMint(sourceInfo)
		if err != nil {
			return err
		}
		if mint.MintAuthority == nil {
			return token.ErrorAuthorityTypeNotSupported
		}
		if err := validateOwner(mint.MintAuthority, authorityInfo, remaining); err != nil {
			return err
		}
	case token.MultisigSize:
		// A multisig authorizes withdrawals from itself.
		if err := validateOwner(sourceInfo.Key, authorityInfo, remaining); err != nil {
			return err
		}
	default:
		return token.ErrorInvalidState
	}

	reserve := host.Rent().MinimumBalance(len(sourceInfo.Data))
	if sourceInfo.Lamports < reserve {
		return token.ErrorNotRentExempt
	}
	transferAmount := sourceInfo.Lamports - reserve

	sourceInfo.Lamports -= transferAmount

	var err error
	if destinationInfo.Lamports, err = checkedAdd(destinationInfo.Lamports, transferAmount); err != nil {
		return err
	}

	return nil
}
