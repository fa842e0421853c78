package program

import (
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWellKnownKeys(t *testing.T) {
	assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", base58.Encode(ProgramKey))
	assert.Equal(t, "So11111111111111111111111111111111111111112", base58.Encode(NativeMint))
	assert.Equal(t, "1nc1nerator11111111111111111111111111111111", base58.Encode(Incinerator))
	assert.Equal(t, "SysvarRent111111111111111111111111111111111", base58.Encode(RentSysVar))

	// The system program is the zero key.
	assert.Equal(t, make([]byte, 32), []byte(SystemProgram))
}

func TestRentMinimumBalance(t *testing.T) {
	rent := DefaultRent()

	// The mainnet value for a 165-byte token account.
	assert.EqualValues(t, 2039280, rent.MinimumBalance(165))

	assert.True(t, rent.IsExempt(2039280, 165))
	assert.False(t, rent.IsExempt(2039279, 165))
}

func TestRentFromAccountInfo(t *testing.T) {
	rent := DefaultRent()

	info := &AccountInfo{
		Key:  RentSysVar,
		Data: rent.Marshal(),
	}

	parsed, err := RentFromAccountInfo(info)
	require.NoError(t, err)
	assert.Equal(t, rent, parsed)

	info.Key = ProgramKey
	_, err = RentFromAccountInfo(info)
	assert.Equal(t, ErrInvalidArgument, err)

	info.Key = RentSysVar
	info.Data = info.Data[:3]
	_, err = RentFromAccountInfo(info)
	assert.Equal(t, ErrInvalidAccountData, err)
}
