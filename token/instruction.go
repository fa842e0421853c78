package token

// Command is the one-byte instruction discriminator.
type Command byte

const (
	CommandInitializeMint Command = iota
	CommandInitializeAccount
	CommandInitializeMultisig
	CommandTransfer
	CommandApprove
	CommandRevoke
	CommandSetAuthority
	CommandMintTo
	CommandBurn
	CommandCloseAccount
	CommandFreezeAccount
	CommandThawAccount
	CommandTransferChecked
	CommandApproveChecked
	CommandMintToChecked
	CommandBurnChecked
	CommandInitializeAccount2
	CommandSyncNative
	CommandInitializeAccount3
	CommandInitializeMultisig2
	CommandInitializeMint2
	CommandGetAccountDataSize
	CommandInitializeImmutableOwner
	CommandAmountToUiAmount
	CommandUiAmountToAmount
)

const (
	// CommandWithdrawExcessLamports reclaims lamports above the rent-exempt
	// reserve of a mint, token account, or multisig.
	CommandWithdrawExcessLamports Command = 38

	// CommandUnwrapLamports moves lamports out of a native token account,
	// reducing its wrapped balance.
	CommandUnwrapLamports Command = 45

	// CommandBatch prefixes a concatenation of sub-instructions. It is only
	// valid at the top level; batches do not nest.
	CommandBatch Command = 255
)

// AuthorityType selects which authority a SetAuthority instruction rewrites.
type AuthorityType byte

const (
	AuthorityTypeMintTokens AuthorityType = iota
	AuthorityTypeFreezeAccount
	AuthorityTypeAccountOwner
	AuthorityTypeCloseAccount
)

func (c Command) String() string {
	switch c {
	case CommandInitializeMint:
		return "InitializeMint"
	case CommandInitializeAccount:
		return "InitializeAccount"
	case CommandInitializeMultisig:
		return "InitializeMultisig"
	case CommandTransfer:
		return "Transfer"
	case CommandApprove:
		return "Approve"
	case CommandRevoke:
		return "Revoke"
	case CommandSetAuthority:
		return "SetAuthority"
	case CommandMintTo:
		return "MintTo"
	case CommandBurn:
		return "Burn"
	case CommandCloseAccount:
		return "CloseAccount"
	case CommandFreezeAccount:
		return "FreezeAccount"
	case CommandThawAccount:
		return "ThawAccount"
	case CommandTransferChecked:
		return "TransferChecked"
	case CommandApproveChecked:
		return "ApproveChecked"
	case CommandMintToChecked:
		return "MintToChecked"
	case CommandBurnChecked:
		return "BurnChecked"
	case CommandInitializeAccount2:
		return "InitializeAccount2"
	case CommandSyncNative:
		return "SyncNative"
	case CommandInitializeAccount3:
		return "InitializeAccount3"
	case CommandInitializeMultisig2:
		return "InitializeMultisig2"
	case CommandInitializeMint2:
		return "InitializeMint2"
	case CommandGetAccountDataSize:
		return "GetAccountDataSize"
	case CommandInitializeImmutableOwner:
		return "InitializeImmutableOwner"
	case CommandAmountToUiAmount:
		return "AmountToUiAmount"
	case CommandUiAmountToAmount:
		return "UiAmountToAmount"
	case CommandWithdrawExcessLamports:
		return "WithdrawExcessLamports"
	case CommandUnwrapLamports:
		return "UnwrapLamports"
	case CommandBatch:
		return "Batch"
	}
	return "Unknown"
}
