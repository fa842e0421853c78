package processor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

func TestMintTo(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 4)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 0)
	destination := env.tokenAccount(t, keys[3], mintInfo, owner)

	env.mintTo(t, mintInfo, destination, mintAuthority, 1000)

	assert.EqualValues(t, 1000, env.loadAccount(t, destination).Amount)
	assert.EqualValues(t, 1000, env.loadMint(t, mintInfo).Supply)
}

func TestMintTo_Authority(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 4)

	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 0)
	destination := env.tokenAccount(t, keys[3], mintInfo, owner)

	// The destination owner is not the mint authority.
	err := env.rt.Invoke(env.accounts(mintInfo, destination, owner), amountData(token.CommandMintTo, 1))
	assert.Equal(t, token.ErrorOwnerMismatch, err)

	mintAuthority := env.signer(t, keys[0])
	mintAuthority.IsSigner = false
	err = env.rt.Invoke(env.accounts(mintInfo, destination, mintAuthority), amountData(token.CommandMintTo, 1))
	assert.Equal(t, program.ErrMissingRequiredSignature, err)
}

func TestMintTo_FixedSupply(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 4)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 0)
	destination := env.tokenAccount(t, keys[3], mintInfo, owner)

	// Clearing the mint authority fixes the supply forever.
	require.NoError(t, env.rt.Invoke(
		env.accounts(mintInfo, mintAuthority),
		setAuthorityData(token.AuthorityTypeMintTokens, nil),
	))

	err := env.rt.Invoke(env.accounts(mintInfo, destination, mintAuthority), amountData(token.CommandMintTo, 1))
	assert.Equal(t, token.ErrorFixedSupply, err)
}

func TestMintTo_Overflow(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 4)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 0)
	destination := env.tokenAccount(t, keys[3], mintInfo, owner)

	env.mintTo(t, mintInfo, destination, mintAuthority, ^uint64(0))

	err := env.rt.Invoke(env.accounts(mintInfo, destination, mintAuthority), amountData(token.CommandMintTo, 1))
	assert.Equal(t, token.ErrorOverflow, err)

	// Both sides rolled back.
	assert.EqualValues(t, ^uint64(0), env.loadAccount(t, destination).Amount)
	assert.EqualValues(t, ^uint64(0), env.loadMint(t, mintInfo).Supply)
}

func TestMintTo_MintMismatch(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 5)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintA := env.mint(t, keys[2], keys[0], nil, 0)
	mintB := env.mint(t, keys[3], keys[0], nil, 0)
	destination := env.tokenAccount(t, keys[4], mintA, owner)

	err := env.rt.Invoke(env.accounts(mintB, destination, mintAuthority), amountData(token.CommandMintTo, 1))
	assert.Equal(t, token.ErrorMintMismatch, err)
}

func TestMintToChecked(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 4)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 2)
	destination := env.tokenAccount(t, keys[3], mintInfo, owner)

	err := env.rt.Invoke(
		env.accounts(mintInfo, destination, mintAuthority),
		amountDecimalsData(token.CommandMintToChecked, 10, 0),
	)
	assert.Equal(t, token.ErrorMintDecimalsMismatch, err)

	require.NoError(t, env.rt.Invoke(
		env.accounts(mintInfo, destination, mintAuthority),
		amountDecimalsData(token.CommandMintToChecked, 10, 2),
	))
	assert.EqualValues(t, 10, env.loadAccount(t, destination).Amount)
}

func TestBurn(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 4)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 0)
	source := env.tokenAccount(t, keys[3], mintInfo, owner)
	env.mintTo(t, mintInfo, source, mintAuthority, 100)

	require.NoError(t, env.rt.Invoke(env.accounts(source, mintInfo, owner), amountData(token.CommandBurn, 40)))

	assert.EqualValues(t, 60, env.loadAccount(t, source).Amount)
	assert.EqualValues(t, 60, env.loadMint(t, mintInfo).Supply)

	err := env.rt.Invoke(env.accounts(source, mintInfo, owner), amountData(token.CommandBurn, 61))
	assert.Equal(t, token.ErrorInsufficientFunds, err)
}

func TestBurn_Delegate(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 5)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	delegate := env.signer(t, keys[2])
	mintInfo := env.mint(t, keys[3], keys[0], nil, 0)
	source := env.tokenAccount(t, keys[4], mintInfo, owner)
	env.mintTo(t, mintInfo, source, mintAuthority, 100)

	require.NoError(t, env.rt.Invoke(env.accounts(source, delegate, owner), amountData(token.CommandApprove, 10)))

	require.NoError(t, env.rt.Invoke(env.accounts(source, mintInfo, delegate), amountData(token.CommandBurn, 10)))
	account := env.loadAccount(t, source)
	assert.EqualValues(t, 90, account.Amount)
	assert.Nil(t, account.Delegate)

	err := env.rt.Invoke(env.accounts(source, mintInfo, delegate), amountData(token.CommandBurn, 1))
	assert.Equal(t, token.ErrorOwnerMismatch, err)
}

func TestBurn_Incinerator(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 5)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	anyone := env.signer(t, keys[2])
	mintInfo := env.mint(t, keys[3], keys[0], nil, 0)
	source := env.tokenAccount(t, keys[4], mintInfo, owner)
	env.mintTo(t, mintInfo, source, mintAuthority, 100)

	// Hand the account to the incinerator; from then on anyone may burn.
	require.NoError(t, env.rt.Invoke(
		env.accounts(source, owner),
		setAuthorityData(token.AuthorityTypeAccountOwner, program.Incinerator),
	))

	anyone.IsSigner = false
	require.NoError(t, env.rt.Invoke(env.accounts(source, mintInfo, anyone), amountData(token.CommandBurn, 100)))
	assert.EqualValues(t, 0, env.loadAccount(t, source).Amount)
	assert.EqualValues(t, 0, env.loadMint(t, mintInfo).Supply)
}

func TestBurnChecked(t *testing.T) {
	env := setup(t)
	keys := generateKeys(t, 4)

	mintAuthority := env.signer(t, keys[0])
	owner := env.signer(t, keys[1])
	mintInfo := env.mint(t, keys[2], keys[0], nil, 9)
	source := env.tokenAccount(t, keys[3], mintInfo, owner)
	env.mintTo(t, mintInfo, source, mintAuthority, 100)

	err := env.rt.Invoke(
		env.accounts(source, mintInfo, owner),
		amountDecimalsData(token.CommandBurnChecked, 10, 2),
	)
	assert.Equal(t, token.ErrorMintDecimalsMismatch, err)

	require.NoError(t, env.rt.Invoke(
		env.accounts(source, mintInfo, owner),
		amountDecimalsData(token.CommandBurnChecked, 10, 9),
	))
	assert.EqualValues(t, 90, env.loadAccount(t, source).Amount)
}
