package processor

import (
	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// ixHeaderSize is the size of a batch sub-instruction header: the number of
// accounts followed by the length of the instruction data.
const ixHeaderSize = 2

// processBatch executes a concatenation of sub-instructions, drawing the
// accounts of each record in order from the accounts vector. A failure in
// any sub-instruction aborts the batch.
//
// Sub-instructions are dispatched through processInstruction, never Process,
// so a nested batch discriminator falls through to invalid-instruction.
func processBatch(host Host, accounts []*program.AccountInfo, data []byte) error {
	for {
		if len(data) < ixHeaderSize {
			return token.ErrorInvalidInstruction
		}

		expectedAccounts := int(data[0])
		dataOffset := ixHeaderSize + int(data[1])

		if len(data) < dataOffset || dataOffset == ixHeaderSize {
			return token.ErrorInvalidInstruction
		}
		if len(accounts) < expectedAccounts {
			return program.ErrNotEnoughAccountKeys
		}

		ixAccounts := accounts[:expectedAccounts]
		ixData := data[ixHeaderSize:dataOffset]

		if err := batchPrecheckOwnership(token.Command(ixData[0]), ixAccounts); err != nil {
			return err
		}

		if err := processInstruction(host, ixAccounts, ixData); err != nil {
			return err
		}

		if dataOffset == len(data) {
			return nil
		}

		accounts = accounts[expectedAccounts:]
		data = data[dataOffset:]
	}
}

// batchPrecheckOwnership re-asserts program ownership of the accounts a
// sub-instruction may leave untouched on a no-op path. The host only
// enforces ownership of accounts whose data was actually mutated, and it
// does so once the whole batch has run, so an imposter blob could
// otherwise slip through.
func batchPrecheckOwnership(command token.Command, accounts []*program.AccountInfo) error {
	switch command {
	case token.CommandTransfer,
		token.CommandMintTo,
		token.CommandBurn,
		token.CommandMintToChecked,
		token.CommandBurnChecked:
		if len(accounts) < 2 {
			return program.ErrNotEnoughAccountKeys
		}
		if err := checkAccountOwner(accounts[0]); err != nil {
			return err
		}
		return checkAccountOwner(accounts[1])

	case token.CommandTransferChecked:
		if len(accounts) < 3 {
			return program.ErrNotEnoughAccountKeys
		}
		if err := checkAccountOwner(accounts[0]); err != nil {
			return err
		}
		return checkAccountOwner(accounts[2])

	case token.CommandApprove,
		token.CommandRevoke,
		token.CommandSetAuthority,
		token.CommandCloseAccount,
		token.CommandFreezeAccount,
		token.CommandThawAccount,
		token.CommandApproveChecked,
		token.CommandInitializeImmutableOwner,
		token.CommandWithdrawExcessLamports,
		token.CommandUnwrapLamports:
		if len(accounts) < 1 {
			return program.ErrNotEnoughAccountKeys
		}
		return checkAccountOwner(accounts[0])
	}

	return nil
}
