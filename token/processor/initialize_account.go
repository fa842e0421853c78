package processor

import (
	"bytes"
	"crypto/ed25519"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processInitializeAccount initializes a token account blob.
//
// Accounts: [writable newAccount, mint, ...]. The owner comes either from
// instruction data (InitializeAccount2/3) or from the third positional
// account; the rent parameters come either from a trailing rent sysvar
// account or from the host (InitializeAccount3).
func processInitializeAccount(host Host, accounts []*program.AccountInfo, owner ed25519.PublicKey, rentSysvarAccount bool) error {
	var newAccountInfo, mintInfo *program.AccountInfo
	var remaining []*program.AccountInfo

	if owner != nil {
		if len(accounts) < 2 {
			return program.ErrNotEnoughAccountKeys
		}
		newAccountInfo, mintInfo, remaining = accounts[0], accounts[1], accounts[2:]
	} else {
		if len(accounts) < 3 {
			return program.ErrNotEnoughAccountKeys
		}
		newAccountInfo, mintInfo, owner, remaining = accounts[0], accounts[1], accounts[2].Key, accounts[3:]
	}

	var minimumBalance uint64
	if rentSysvarAccount {
		if len(remaining) < 1 {
			return program.ErrNotEnoughAccountKeys
		}
		rent, err := program.RentFromAccountInfo(remaining[0])
		if err != nil {
			return err
		}
		minimumBalance = rent.MinimumBalance(len(newAccountInfo.Data))
	} else {
		minimumBalance = host.Rent().MinimumBalance(len(newAccountInfo.Data))
	}

	account, err := loadAccountUnchecked(newAccountInfo)
	if err != nil {
		return err
	}
	if account.IsInitialized() {
		return token.ErrorAlreadyInUse
	}

	if newAccountInfo.Lamports < minimumBalance {
		return token.ErrorNotRentExempt
	}

	isNativeMint := bytes.Equal(mintInfo.Key, program.NativeMint)
	if !isNativeMint {
		if err := checkAccountOwner(mintInfo); err != nil {
			return err
		}
		if _, err := loadMint(mintInfo); err != nil {
			return token.ErrorInvalidMint
		}
	}

	account.State = token.AccountStateInitialized
	account.Mint = mintInfo.Key
	account.Owner = owner
	account.Delegate = nil
	account.DelegatedAmount = 0
	account.CloseAuthority = nil

	if isNativeMint {
		reserve := minimumBalance
		account.IsNative = &reserve
		if account.Amount, err = checkedSub(newAccountInfo.Lamports, reserve); err != nil {
			return err
		}
	} else {
		account.IsNative = nil
		account.Amount = 0
	}

	storeAccount(newAccountInfo, account)
	return nil
}
