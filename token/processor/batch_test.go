package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

func TestBatch(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 7)

	mintAuthority := env.signer(t, keys[0])
	ownerA := env.signer(t, keys[1])
	ownerB := env.signer(t, keys[2])

	mintInfo, err := env.rt.CreateProgramAccount(keys[3], token.MintSize)
	require.NoError(t, err)
	accountA, err := env.rt.CreateProgramAccount(keys[4], token.AccountSize)
	require.NoError(t, err)
	accountB, err := env.rt.CreateProgramAccount(keys[5], token.AccountSize)
	require.NoError(t, err)
	destination := env.signer(t, keys[6])

	// Mint, two accounts, funding, transfer, and closure in one go.
	data := batchData(
		batchRecord{2, initializeMintData(token.CommandInitializeMint, 0, keys[0], nil)},
		batchRecord{4, []byte{byte(token.CommandInitializeAccount)}},
		batchRecord{4, []byte{byte(token.CommandInitializeAccount)}},
		batchRecord{3, amountData(token.CommandMintTo, 1000)},
		batchRecord{3, amountData(token.CommandTransfer, 1000)},
		batchRecord{3, []byte{byte(token.CommandCloseAccount)}},
	)
	accounts := env.accounts(
		mintInfo, env.rent,
		accountA, mintInfo, ownerA, env.rent,
		accountB, mintInfo, ownerB, env.rent,
		mintInfo, accountA, mintAuthority,
		accountA, accountB, ownerA,
		accountA, destination, ownerA,
	)
	require.NoError(t, env.rt.Invoke(accounts, data))

	assert.EqualValues(t, 1000, env.loadAccount(t, accountB).Amount)
	assert.EqualValues(t, 1000, env.loadMint(t, mintInfo).Supply)
	assert.Empty(t, accountA.Data)
	assert.EqualValues(t, 0, accountA.Lamports)
}

func TestBatch_AbortRollsBackEverything(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 6)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 0)
	source := env.tokenAccount(t, keys[3], mintInfo, owner)
	destination := env.tokenAccount(t, keys[4], mintInfo, env.signer(t, keys[5]))
	env.mintTo(t, mintInfo, source, mintAuthority, 100)

	// The second transfer overdraws; the first must not stick.
	data := batchData(
		batchRecord{3, amountData(token.CommandTransfer, 60)},
		batchRecord{3, amountData(token.CommandTransfer, 60)},
	)
	accounts := env.accounts(
		source, destination, owner,
		source, destination, owner,
	)
	err := env.rt.Invoke(accounts, data)
	assert.Equal(t, token.ErrorInsufficientFunds, err)

	assert.EqualValues(t, 100, env.loadAccount(t, source).Amount)
	assert.EqualValues(t, 0, env.loadAccount(t, destination).Amount)
}

func TestBatch_NoNesting(t *testing.T) {
	env := setup(t)

	inner := batchData(batchRecord{0, []byte{byte(token.CommandSyncNative)}})
	data := batchData(batchRecord{0, inner})

	err := env.rt.Invoke(nil, data)
	assert.Equal(t, token.ErrorInvalidInstruction, err)
}

func TestBatch_MalformedEncoding(t *testing.T) {
	env := setup(t)

	// Bare batch discriminator.
	err := env.rt.Invoke(nil, []byte{byte(token.CommandBatch)})
	assert.Equal(t, token.ErrorInvalidInstruction, err)

	// Header with a zero data length.
	err = env.rt.Invoke(nil, []byte{byte(token.CommandBatch), 0, 0})
	assert.Equal(t, token.ErrorInvalidInstruction, err)

	// Header promising more data than remains.
	err = env.rt.Invoke(nil, []byte{byte(token.CommandBatch), 0, 5, byte(token.CommandRevoke)})
	assert.Equal(t, token.ErrorInvalidInstruction, err)

	// Header promising more accounts than provided.
	err = env.rt.Invoke(nil, []byte{byte(token.CommandBatch), 2, 1, byte(token.CommandRevoke)})
	assert.Equal(t, program.ErrNotEnoughAccountKeys, err)
}

func TestBatch_OwnershipPrecheck(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 6)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 0)
	source := env.tokenAccount(t, keys[3], mintInfo, owner)
	destination := env.tokenAccount(t, keys[4], mintInfo, env.signer(t, keys[5]))
	env.mintTo(t, mintInfo, source, mintAuthority, 10)

	// A foreign-owned destination is caught before dispatch, even though a
	// zero transfer would never write to it.
	destination.Owner = program.SystemProgram
	data := batchData(batchRecord{3, amountData(token.CommandTransfer, 0)})
	err := env.rt.Invoke(env.accounts(source, destination, owner), data)
	assert.Equal(t, program.ErrIncorrectProgramID, err)
}
