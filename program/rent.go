package program

import (
	"bytes"
	"encoding/binary"
	"math"
)

// accountStorageOverhead is the number of bytes the host charges rent for
// on top of an account's data length.
const accountStorageOverhead = 128

// RentSize is the byte length of the rent sysvar account data.
const RentSize = 8 + 8 + 1

// Rent holds the host's rent parameters. Handlers obtain it either from the
// rent sysvar account (when the instruction carries one) or from the host
// directly.
type Rent struct {
	// LamportsPerByteYear is the rental rate in lamports per byte-year.
	LamportsPerByteYear uint64
	// ExemptionThreshold is the number of years of rent a balance must
	// cover to be exempt from collection.
	ExemptionThreshold float64
	// BurnPercent is the portion of collected rent that is burned.
	BurnPercent byte
}

// DefaultRent returns the rent parameters the host networks launched with.
func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: 3480,
		ExemptionThreshold:  2.0,
		BurnPercent:         50,
	}
}

// MinimumBalance returns the minimum lamport balance an account of the given
// data length must hold to be exempt from rent collection.
func (r Rent) MinimumBalance(dataLen int) uint64 {
	size := uint64(accountStorageOverhead + dataLen)
	return uint64(float64(size*r.LamportsPerByteYear) * r.ExemptionThreshold)
}

// IsExempt reports whether the balance covers the rent-exempt minimum for
// the given data length.
func (r Rent) IsExempt(lamports uint64, dataLen int) bool {
	return lamports >= r.MinimumBalance(dataLen)
}

// Marshal encodes the rent parameters in the sysvar account layout.
func (r Rent) Marshal() []byte {
	b := make([]byte, RentSize)
	binary.LittleEndian.PutUint64(b, r.LamportsPerByteYear)
	binary.LittleEndian.PutUint64(b[8:], math.Float64bits(r.ExemptionThreshold))
	b[16] = r.BurnPercent
	return b
}

// RentFromAccountInfo decodes the rent parameters from the rent sysvar
// account.
func RentFromAccountInfo(info *AccountInfo) (r Rent, err error) {
	if !bytes.Equal(info.Key, RentSysVar) {
		return r, ErrInvalidArgument
	}
	if len(info.Data) < RentSize {
		return r, ErrInvalidAccountData
	}

	r.LamportsPerByteYear = binary.LittleEndian.Uint64(info.Data)
	r.ExemptionThreshold = math.Float64frombits(binary.LittleEndian.Uint64(info.Data[8:]))
	r.BurnPercent = info.Data[16]
	return r, nil
}
