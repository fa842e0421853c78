package token

// Error is the numeric custom error returned by the token program. The
// values are part of the wire protocol and must remain stable.
type Error int

const (
	ErrorNotRentExempt Error = iota
	ErrorInsufficientFunds
	ErrorInvalidMint
	ErrorMintMismatch
	ErrorOwnerMismatch
	ErrorFixedSupply
	ErrorAlreadyInUse
	ErrorInvalidNumberOfProvidedSigners
	ErrorInvalidNumberOfRequiredSigners
	ErrorUninitializedState
	ErrorNativeNotSupported
	ErrorNonNativeHasBalance
	ErrorInvalidInstruction
	ErrorInvalidState
	ErrorOverflow
	ErrorAuthorityTypeNotSupported
	ErrorMintCannotFreeze
	ErrorAccountFrozen
	ErrorMintDecimalsMismatch
	ErrorNonNativeNotSupported
)

// Code returns the numeric custom code reported to the host.
func (e Error) Code() uint32 {
	return uint32(e)
}

func (e Error) Error() string {
	switch e {
	case ErrorNotRentExempt:
		return "Error: Lamport balance below rent-exempt threshold"
	case ErrorInsufficientFunds:
		return "Error: insufficient funds"
	case ErrorInvalidMint:
		return "Error: Invalid Mint"
	case ErrorMintMismatch:
		return "Error: Account not associated with this Mint"
	case ErrorOwnerMismatch:
		return "Error: owner does not match"
	case ErrorFixedSupply:
		return "Error: the total supply of this token is fixed"
	case ErrorAlreadyInUse:
		return "Error: account or token already in use"
	case ErrorInvalidNumberOfProvidedSigners:
		return "Error: Invalid number of provided signers"
	case ErrorInvalidNumberOfRequiredSigners:
		return "Error: Invalid number of required signers"
	case ErrorUninitializedState:
		return "Error: State is uninitialized"
	case ErrorNativeNotSupported:
		return "Error: Instruction does not support native tokens"
	case ErrorNonNativeHasBalance:
		return "Error: Non-native account can only be closed if its balance is zero"
	case ErrorInvalidInstruction:
		return "Error: Invalid instruction"
	case ErrorInvalidState:
		return "Error: Invalid account state for operation"
	case ErrorOverflow:
		return "Error: Operation overflowed"
	case ErrorAuthorityTypeNotSupported:
		return "Error: Account does not support specified authority type"
	case ErrorMintCannotFreeze:
		return "Error: This token mint cannot freeze accounts"
	case ErrorAccountFrozen:
		return "Error: Account is frozen"
	case ErrorMintDecimalsMismatch:
		return "Error: decimals different from the Mint decimals"
	case ErrorNonNativeNotSupported:
		return "Error: Instruction does not support non-native tokens"
	}
	return "Error: unknown"
}
