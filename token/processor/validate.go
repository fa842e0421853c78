package processor

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"
	"math"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
)

// checkAccountOwner fails if the host-level owner of the account is not
// this program. Handlers call it explicitly on paths that do not write to
// an account, since the host only enforces ownership of mutated accounts.
func checkAccountOwner(info *program.AccountInfo) error {
	if !info.IsOwnedBy(program.ProgramKey) {
		return program.ErrIncorrectProgramID
	}
	return nil
}

// validateOwner checks that the presented authority matches the expected
// owner and carries the required signatures. When the authority account is
// a multisig owned by this program, at least M of its signer set must be
// present among signers, each with a signature; otherwise the authority
// itself must have signed.
func validateOwner(expectedOwner ed25519.PublicKey, ownerInfo *program.AccountInfo, signers []*program.AccountInfo) error {
	if !bytes.Equal(expectedOwner, ownerInfo.Key) {
		return token.ErrorOwnerMismatch
	}

	if ownerInfo.IsOwnedBy(program.ProgramKey) && len(ownerInfo.Data) == token.MultisigSize {
		multisig, err := loadMultisig(ownerInfo)
		if err != nil {
			return err
		}

		n := int(multisig.N)
		if n > token.MaxSigners {
			n = token.MaxSigners
		}

		var numSigners byte
		var matched [token.MaxSigners]bool
		for _, signer := range signers {
			for position, key := range multisig.Signers[:n] {
				if bytes.Equal(key, signer.Key) && !matched[position] {
					if !signer.IsSigner {
						return program.ErrMissingRequiredSignature
					}
					matched[position] = true
					numSigners++
				}
			}
		}
		if numSigners < multisig.M {
			return program.ErrMissingRequiredSignature
		}
		return nil
	}

	if !ownerInfo.IsSigner {
		return program.ErrMissingRequiredSignature
	}
	return nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, token.ErrorOverflow
	}
	return a + b, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	if a < b {
		return 0, token.ErrorOverflow
	}
	return a - b, nil
}

// unpackAmount reads the little-endian u64 amount that trails most
// instructions.
func unpackAmount(data []byte) (uint64, error) {
	if len(data) < 8 {
		return 0, token.ErrorInvalidInstruction
	}
	return binary.LittleEndian.Uint64(data), nil
}

// unpackAmountAndDecimals reads the amount plus the expected decimals of a
// checked instruction.
func unpackAmountAndDecimals(data []byte) (uint64, byte, error) {
	if len(data) < 9 {
		return 0, 0, token.ErrorInvalidInstruction
	}
	return binary.LittleEndian.Uint64(data), data[8], nil
}
