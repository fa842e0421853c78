// Package processor implements the instruction-dispatch and state-mutation
// engine of the token program.
//
// The host delivers one instruction per invocation as a set of account
// handles plus the raw instruction data. Processing is synchronous and
// transactional: any error unwinds every mutation made during the
// invocation.
package processor

import (
	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// Host supplies the facilities a handler cannot derive from its accounts:
// the rent parameters and the transient return-data slot used by the
// query-shaped instructions.
type Host interface {
	Rent() program.Rent
	SetReturnData(data []byte)
}

// Process is the program entrypoint. It separates the batch discriminator
// from regular instructions (batches must not nest, so the batch executor
// re-enters processInstruction, never Process) and logs any error before
// returning it to the host.
func Process(host Host, accounts []*program.AccountInfo, data []byte) error {
	if len(data) == 0 {
		err := token.ErrorInvalidInstruction
		program.Log(err.Error())
		return err
	}

	var err error
	if token.Command(data[0]) == token.CommandBatch {
		err = processBatch(host, accounts, data[1:])
	} else {
		err = processInstruction(host, accounts, data)
	}

	if err != nil {
		program.Log(err.Error())
	}
	return err
}

// processInstruction dispatches a regular instruction. The switch is split
// in two tiers so the most common instructions are matched with the fewest
// comparisons.
func processInstruction(host Host, accounts []*program.AccountInfo, data []byte) error {
	command, data := token.Command(data[0]), data[1:]

	switch command {
	case token.CommandInitializeMint:
		return processInitializeMint(host, accounts, data, true)
	case token.CommandInitializeAccount:
		return processInitializeAccount(host, accounts, nil, true)
	case token.CommandTransfer:
		amount, err := unpackAmount(data)
		if err != nil {
			return err
		}
		return processTransfer(accounts, amount, nil)
	case token.CommandMintTo:
		amount, err := unpackAmount(data)
		if err != nil {
			return err
		}
		return processMintTo(accounts, amount, nil)
	case token.CommandBurn:
		amount, err := unpackAmount(data)
		if err != nil {
			return err
		}
		return processBurn(accounts, amount, nil)
	case token.CommandCloseAccount:
		return processCloseAccount(accounts)
	case token.CommandTransferChecked:
		amount, decimals, err := unpackAmountAndDecimals(data)
		if err != nil {
			return err
		}
		return processTransfer(accounts, amount, &decimals)
	case token.CommandInitializeAccount2:
		owner, err := unpackOwner(data)
		if err != nil {
			return err
		}
		return processInitializeAccount(host, accounts, owner, true)
	case token.CommandInitializeAccount3:
		owner, err := unpackOwner(data)
		if err != nil {
			return err
		}
		return processInitializeAccount(host, accounts, owner, false)
	case token.CommandInitializeMint2:
		return processInitializeMint(host, accounts, data, false)
	}

	return processRemainingInstruction(host, accounts, data, command)
}

// processRemainingInstruction handles the less common instructions.
func processRemainingInstruction(host Host, accounts []*program.AccountInfo, data []byte, command token.Command) error {
	switch command {
	case token.CommandInitializeMultisig:
		return processInitializeMultisig(host, accounts, data, true)
	case token.CommandInitializeMultisig2:
		return processInitializeMultisig(host, accounts, data, false)
	case token.CommandApprove:
		amount, err := unpackAmount(data)
		if err != nil {
			return err
		}
		return processApprove(accounts, amount, nil)
	case token.CommandApproveChecked:
		amount, decimals, err := unpackAmountAndDecimals(data)
		if err != nil {
			return err
		}
		return processApprove(accounts, amount, &decimals)
	case token.CommandRevoke:
		return processRevoke(accounts)
	case token.CommandSetAuthority:
		return processSetAuthority(accounts, data)
	case token.CommandMintToChecked:
		amount, decimals, err := unpackAmountAndDecimals(data)
		if err != nil {
			return err
		}
		return processMintTo(accounts, amount, &decimals)
	case token.CommandBurnChecked:
		amount, decimals, err := unpackAmountAndDecimals(data)
		if err != nil {
			return err
		}
		return processBurn(accounts, amount, &decimals)
	case token.CommandFreezeAccount:
		return processToggleFreeze(accounts, true)
	case token.CommandThawAccount:
		return processToggleFreeze(accounts, false)
	case token.CommandSyncNative:
		return processSyncNative(accounts)
	case token.CommandGetAccountDataSize:
		return processGetAccountDataSize(host, accounts)
	case token.CommandInitializeImmutableOwner:
		return processInitializeImmutableOwner(accounts)
	case token.CommandAmountToUiAmount:
		return processAmountToUiAmount(host, accounts, data)
	case token.CommandUiAmountToAmount:
		return processUiAmountToAmount(host, accounts, data)
	case token.CommandWithdrawExcessLamports:
		return processWithdrawExcessLamports(host, accounts)
	case token.CommandUnwrapLamports:
		return processUnwrapLamports(accounts, data)
	}

	return token.ErrorInvalidInstruction
}

func unpackOwner(data []byte) ([]byte, error) {
	if len(data) != 32 {
		return nil, program.ErrInvalidInstructionData
	}
	return data, nil
}
