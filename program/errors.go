package program

import "github.com/pkg/errors"

// Host-level instruction errors. These mirror the error vocabulary the host
// runtime itself reports, as opposed to the numeric custom codes owned by
// the token program (see the token package).
var (
	ErrInvalidArgument          = errors.New("InvalidArgument")
	ErrInvalidInstructionData   = errors.New("InvalidInstructionData")
	ErrInvalidAccountData       = errors.New("InvalidAccountData")
	ErrIncorrectProgramID       = errors.New("IncorrectProgramId")
	ErrMissingRequiredSignature = errors.New("MissingRequiredSignature")
	ErrNotEnoughAccountKeys     = errors.New("NotEnoughAccountKeys")
	ErrUninitializedAccount     = errors.New("UninitializedAccount")
)
