package processor

import (
	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// processInitializeMultisig initializes a multisignature blob.
//
// Accounts: [writable multisig, (rent sysvar), signer0..signerN-1]. N is
// implied by the number of trailing accounts; M arrives in the data. M > N
// is not rejected here: such a group simply can never satisfy
// validateOwner.
func processInitializeMultisig(host Host, accounts []*program.AccountInfo, data []byte, rentSysvarAccount bool) error {
	if len(data) < 1 {
		return token.ErrorInvalidInstruction
	}
	m := data[0]

	if len(accounts) < 1 {
		return program.ErrNotEnoughAccountKeys
	}
	multisigInfo := accounts[0]

	var rent program.Rent
	signerInfos := accounts[1:]
	if rentSysvarAccount {
		if len(accounts) < 2 {
			return program.ErrNotEnoughAccountKeys
		}
		var err error
		if rent, err = program.RentFromAccountInfo(accounts[1]); err != nil {
			return err
		}
		signerInfos = accounts[2:]
	} else {
		rent = host.Rent()
	}

	multisig, err := loadMultisigUnchecked(multisigInfo)
	if err != nil {
		return err
	}
	if multisig.IsInitialized {
		return token.ErrorAlreadyInUse
	}

	if !rent.IsExempt(multisigInfo.Lamports, token.MultisigSize) {
		return token.ErrorNotRentExempt
	}

	multisig.M = m
	if !isValidSignerIndex(len(signerInfos)) {
		return token.ErrorInvalidNumberOfProvidedSigners
	}
	multisig.N = byte(len(signerInfos))
	if !isValidSignerIndex(int(multisig.M)) {
		return token.ErrorInvalidNumberOfRequiredSigners
	}
	for i, signerInfo := range signerInfos {
		multisig.Signers[i] = signerInfo.Key
	}
	multisig.IsInitialized = true

	storeMultisig(multisigInfo, multisig)
	return nil
}

func isValidSignerIndex(n int) bool {
	return n >= token.MinSigners && n <= token.MaxSigners
}
