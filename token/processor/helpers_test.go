package processor_test

import (
	"crypto/ed25519"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/runtime"
	"github.com/kinecosystem/token-program/testutil"
	"github.com/kinecosystem/token-program/token"
)

type env struct {
	rt   *runtime.Runtime
	rent *program.AccountInfo
}

func setup(t *testing.T) *env {
	rt := runtime.NewRuntime()
	return &env{
		rt:   rt,
		rent: rt.RentSysvarAccount(),
	}
}

func (e *env) accounts(infos ...*program.AccountInfo) []*program.AccountInfo {
	return infos
}

func (e *env) signer(t *testing.T, key ed25519.PublicKey) *program.AccountInfo {
	info, err := e.rt.CreateSignerAccount(key)
	require.NoError(t, err)
	return info
}

// mint creates and initializes a mint with the given authorities.
func (e *env) mint(t *testing.T, key, authority, freezeAuthority ed25519.PublicKey, decimals byte) *program.AccountInfo {
	info, err := e.rt.CreateProgramAccount(key, token.MintSize)
	require.NoError(t, err)

	data := initializeMintData(token.CommandInitializeMint, decimals, authority, freezeAuthority)
	require.NoError(t, e.rt.Invoke(e.accounts(info, e.rent), data))
	return info
}

// tokenAccount creates and initializes a token account of the given mint.
func (e *env) tokenAccount(t *testing.T, key ed25519.PublicKey, mint, owner *program.AccountInfo) *program.AccountInfo {
	info, err := e.rt.CreateProgramAccount(key, token.AccountSize)
	require.NoError(t, err)

	data := []byte{byte(token.CommandInitializeAccount)}
	require.NoError(t, e.rt.Invoke(e.accounts(info, mint, owner, e.rent), data))
	return info
}

// mintTo mints amount into the destination account.
func (e *env) mintTo(t *testing.T, mint, destination, authority *program.AccountInfo, amount uint64) {
	data := amountData(token.CommandMintTo, amount)
	require.NoError(t, e.rt.Invoke(e.accounts(mint, destination, authority), data))
}

func (e *env) loadAccount(t *testing.T, info *program.AccountInfo) token.Account {
	var account token.Account
	require.NoError(t, account.Unmarshal(info.Data))
	return account
}

func (e *env) loadMint(t *testing.T, info *program.AccountInfo) token.Mint {
	var mint token.Mint
	require.NoError(t, mint.Unmarshal(info.Data))
	return mint
}

func generateKeys(t *testing.T, n int) []ed25519.PublicKey {
	return testutil.GenerateKeys(t, n)
}

func initializeMintData(command token.Command, decimals byte, authority, freezeAuthority ed25519.PublicKey) []byte {
	data := []byte{byte(command), decimals}
	data = append(data, authority...)
	if freezeAuthority != nil {
		data = append(data, 1)
		data = append(data, freezeAuthority...)
	} else {
		data = append(data, 0)
	}
	return data
}

func amountData(command token.Command, amount uint64) []byte {
	data := make([]byte, 9)
	data[0] = byte(command)
	binary.LittleEndian.PutUint64(data[1:], amount)
	return data
}

func amountDecimalsData(command token.Command, amount uint64, decimals byte) []byte {
	return append(amountData(command, amount), decimals)
}

func setAuthorityData(authorityType token.AuthorityType, newAuthority ed25519.PublicKey) []byte {
	data := []byte{byte(token.CommandSetAuthority), byte(authorityType)}
	if newAuthority != nil {
		data = append(data, 1)
		data = append(data, newAuthority...)
	} else {
		data = append(data, 0)
	}
	return data
}

// batchData concatenates sub-instruction records after the batch
// discriminator.
func batchData(records ...batchRecord) []byte {
	data := []byte{byte(token.CommandBatch)}
	for _, r := range records {
		data = append(data, r.numAccounts, byte(len(r.data)))
		data = append(data, r.data...)
	}
	return data
}

type batchRecord struct {
	numAccounts byte
	data        []byte
}
