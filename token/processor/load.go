package processor

import (
	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// Typed loads over raw account blobs. The byte length is the only type
// discriminator, so every load starts by checking it. The "unchecked"
// variants skip the initialization requirement and are only used by the
// handlers that initialize a blob.

func loadAccountUnchecked(info *program.AccountInfo) (*token.Account, error) {
	var account token.Account
	if err := account.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &account, nil
}

func loadAccount(info *program.AccountInfo) (*token.Account, error) {
	account, err := loadAccountUnchecked(info)
	if err != nil {
		return nil, err
	}
	if !account.IsInitialized() {
		return nil, program.ErrUninitializedAccount
	}
	return account, nil
}

func loadMintUnchecked(info *program.AccountInfo) (*token.Mint, error) {
	var mint token.Mint
	if err := mint.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &mint, nil
}

func loadMint(info *program.AccountInfo) (*token.Mint, error) {
	mint, err := loadMintUnchecked(info)
	if err != nil {
		return nil, err
	}
	if !mint.IsInitialized {
		return nil, program.ErrUninitializedAccount
	}
	return mint, nil
}

func loadMultisigUnchecked(info *program.AccountInfo) (*token.Multisig, error) {
	var multisig token.Multisig
	if err := multisig.Unmarshal(info.Data); err != nil {
		return nil, err
	}
	return &multisig, nil
}

func loadMultisig(info *program.AccountInfo) (*token.Multisig, error) {
	multisig, err := loadMultisigUnchecked(info)
	if err != nil {
		return nil, err
	}
	if !multisig.IsInitialized {
		return nil, program.ErrUninitializedAccount
	}
	return multisig, nil
}

func storeAccount(info *program.AccountInfo, account *token.Account) {
	copy(info.Data, account.Marshal())
}

func storeMint(info *program.AccountInfo, mint *token.Mint) {
	copy(info.Data, mint.Marshal())
}

func storeMultisig(info *program.AccountInfo, multisig *token.Multisig) {
	copy(info.Data, multisig.Marshal())
}
