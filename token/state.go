package token

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"

	"github.com/kinecosystem/token-program/program"
)

// Account state on disk and in memory use fixed layouts with little-endian
// integers and alignment 1. Optional fields are a four-byte tag (0 = none,
// 1 = some; anything else is invalid data) followed by the value.

type AccountState byte

const (
	AccountStateUninitialized AccountState = iota
	AccountStateInitialized
	AccountStateFrozen
)

const (
	// MintSize is the byte length of a mint account.
	MintSize = 4 + 32 + 8 + 1 + 1 + 4 + 32
	// AccountSize is the byte length of a token account.
	AccountSize = 32 + 32 + 8 + 4 + 32 + 1 + 4 + 8 + 8 + 4 + 32
	// MultisigSize is the byte length of a multisignature account.
	MultisigSize = 1 + 1 + 1 + MaxSigners*32
)

const (
	// MinSigners is the minimum signer threshold of a multisig.
	MinSigners = 1
	// MaxSigners is the maximum number of multisig signers.
	MaxSigners = 11
)

// Mint represents a token class.
type Mint struct {
	// The authority allowed to mint new tokens. If nil, the supply is
	// fixed and no further tokens may ever be minted.
	MintAuthority ed25519.PublicKey
	// Total supply of tokens in circulation.
	Supply uint64
	// Number of base 10 digits to the right of the decimal place.
	Decimals byte
	IsInitialized bool
	// The authority allowed to freeze token accounts of this mint. If
	// nil, accounts can never be frozen.
	FreezeAuthority ed25519.PublicKey
}

func (m *Mint) Marshal() []byte {
	b := make([]byte, MintSize)

	var offset int
	writeOptionalKey(b, m.MintAuthority, &offset)
	writeUint64(b[offset:], m.Supply, &offset)
	b[offset] = m.Decimals
	offset++
	writeBool(b[offset:], m.IsInitialized, &offset)
	writeOptionalKey(b[offset:], m.FreezeAuthority, &offset)

	return b
}

func (m *Mint) Unmarshal(b []byte) error {
	if len(b) != MintSize {
		return program.ErrInvalidAccountData
	}

	var offset int
	if err := loadOptionalKey(b, &m.MintAuthority, &offset); err != nil {
		return err
	}
	loadUint64(b[offset:], &m.Supply, &offset)
	m.Decimals = b[offset]
	offset++
	if err := loadBool(b[offset:], &m.IsInitialized, &offset); err != nil {
		return err
	}
	return loadOptionalKey(b[offset:], &m.FreezeAuthority, &offset)
}

// Account represents a holding of one mint for one owner.
type Account struct {
	// The mint associated with this account.
	Mint ed25519.PublicKey
	// The owner of this account.
	Owner ed25519.PublicKey
	// The amount of tokens this account holds.
	Amount uint64
	// If set, then the 'DelegatedAmount' represents the amount
	// authorized by the delegate.
	Delegate ed25519.PublicKey
	// The account's state.
	State AccountState
	// If set, this is a native token, and the value logs the rent-exempt
	// reserve. The wrapped amount of a native account tracks the account's
	// lamports minus this reserve; lamports added outside the program show
	// up in the amount only after a SyncNative.
	IsNative *uint64
	// The amount delegated.
	DelegatedAmount uint64
	// Optional authority to close the account.
	CloseAuthority ed25519.PublicKey
}

func (a *Account) IsInitialized() bool {
	return a.State != AccountStateUninitialized
}

func (a *Account) IsFrozen() bool {
	return a.State == AccountStateFrozen
}

// IsOwnedBySystemProgramOrIncinerator reports whether the account's owner
// field is the system program or the incinerator. Burning from (and
// closing) such accounts requires no authority.
func (a *Account) IsOwnedBySystemProgramOrIncinerator() bool {
	return bytes.Equal(a.Owner, program.SystemProgram) || bytes.Equal(a.Owner, program.Incinerator)
}

func (a *Account) Marshal() []byte {
	b := make([]byte, AccountSize)

	var offset int
	writeKey(b, a.Mint, &offset)
	writeKey(b[offset:], a.Owner, &offset)
	writeUint64(b[offset:], a.Amount, &offset)
	writeOptionalKey(b[offset:], a.Delegate, &offset)
	b[offset] = byte(a.State)
	offset++
	writeOptionalUint64(b[offset:], a.IsNative, &offset)
	writeUint64(b[offset:], a.DelegatedAmount, &offset)
	writeOptionalKey(b[offset:], a.CloseAuthority, &offset)

	return b
}

func (a *Account) Unmarshal(b []byte) error {
	if len(b) != AccountSize {
		return program.ErrInvalidAccountData
	}

	var offset int
	loadKey(b, &a.Mint, &offset)
	loadKey(b[offset:], &a.Owner, &offset)
	loadUint64(b[offset:], &a.Amount, &offset)
	if err := loadOptionalKey(b[offset:], &a.Delegate, &offset); err != nil {
		return err
	}
	if b[offset] > byte(AccountStateFrozen) {
		return program.ErrInvalidAccountData
	}
	a.State = AccountState(b[offset])
	offset++
	if err := loadOptionalUint64(b[offset:], &a.IsNative, &offset); err != nil {
		return err
	}
	loadUint64(b[offset:], &a.DelegatedAmount, &offset)
	return loadOptionalKey(b[offset:], &a.CloseAuthority, &offset)
}

// Multisig represents an M-of-N signer group.
type Multisig struct {
	// Number of signers required.
	M byte
	// Number of valid signers.
	N byte
	IsInitialized bool
	// Signer public keys. Slots [0, N) are meaningful; the rest are zero.
	Signers [MaxSigners]ed25519.PublicKey
}

func (m *Multisig) Marshal() []byte {
	b := make([]byte, MultisigSize)

	b[0] = m.M
	b[1] = m.N
	if m.IsInitialized {
		b[2] = 1
	}

	offset := 3
	for i := range m.Signers {
		writeKey(b[offset:], m.Signers[i], &offset)
	}

	return b
}

func (m *Multisig) Unmarshal(b []byte) error {
	if len(b) != MultisigSize {
		return program.ErrInvalidAccountData
	}

	m.M = b[0]
	m.N = b[1]
	if b[2] > 1 {
		return program.ErrInvalidAccountData
	}
	m.IsInitialized = b[2] == 1

	offset := 3
	for i := range m.Signers {
		loadKey(b[offset:], &m.Signers[i], &offset)
	}

	return nil
}

func writeKey(dst []byte, src []byte, offset *int) {
	copy(dst, src)
	*offset += ed25519.PublicKeySize
}

func writeOptionalKey(dst []byte, src []byte, offset *int) {
	if len(src) > 0 {
		dst[0] = 1
		copy(dst[4:], src)
	}

	*offset += 4 + ed25519.PublicKeySize
}

func writeUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst, v)
	*offset += 8
}

func writeOptionalUint64(dst []byte, v *uint64, offset *int) {
	if v != nil {
		dst[0] = 1
		binary.LittleEndian.PutUint64(dst[4:], *v)
	}
	*offset += 4 + 8
}

func writeBool(dst []byte, v bool, offset *int) {
	if v {
		dst[0] = 1
	}
	*offset++
}

func loadKey(src []byte, dst *ed25519.PublicKey, offset *int) {
	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src)
	*offset += ed25519.PublicKeySize
}

func loadOptionalKey(src []byte, dst *ed25519.PublicKey, offset *int) error {
	switch binary.LittleEndian.Uint32(src) {
	case 0:
		*dst = nil
	case 1:
		*dst = make([]byte, ed25519.PublicKeySize)
		copy(*dst, src[4:])
	default:
		return program.ErrInvalidAccountData
	}
	*offset += 4 + ed25519.PublicKeySize
	return nil
}

func loadUint64(src []byte, dst *uint64, offset *int) {
	*dst = binary.LittleEndian.Uint64(src)
	*offset += 8
}

func loadOptionalUint64(src []byte, dst **uint64, offset *int) error {
	switch binary.LittleEndian.Uint32(src) {
	case 0:
		*dst = nil
	case 1:
		val := binary.LittleEndian.Uint64(src[4:])
		*dst = &val
	default:
		return program.ErrInvalidAccountData
	}
	*offset += 4 + 8
	return nil
}

func loadBool(src []byte, dst *bool, offset *int) error {
	if src[0] > 1 {
		return program.ErrInvalidAccountData
	}
	*dst = src[0] == 1
	*offset++
	return nil
}
