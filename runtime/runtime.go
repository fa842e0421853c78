// Package runtime is an in-process stand-in for the host execution
// environment. It keeps a ledger of account blobs, funds and creates them
// the way the system program would, and invokes the token program
// transactionally: on any error every byte, lamport, and owner mutation of
// the invocation is rolled back.
package runtime

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58/base58"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kinecosystem/token-program/program"
	"github.com/kinecosystem/token-program/token"
	"github.com/kinecosystem/token-program/token/processor"
)

var (
	invocationCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "token_runtime",
		Name:      "invocations_total",
		Help:      "Number of token program invocations",
	}, []string{"instruction", "result"})
)

func init() {
	if err := prometheus.Register(invocationCounterVec); err != nil {
		if e, ok := err.(prometheus.AlreadyRegisteredError); ok {
			invocationCounterVec = e.ExistingCollector.(*prometheus.CounterVec)
		}
	}
}

// Runtime simulates the host for one program.
type Runtime struct {
	rent       program.Rent
	accounts   map[string]*program.AccountInfo
	returnData []byte
}

func NewRuntime() *Runtime {
	return &Runtime{
		rent:     program.DefaultRent(),
		accounts: make(map[string]*program.AccountInfo),
	}
}

// Rent returns the host rent parameters.
func (r *Runtime) Rent() program.Rent {
	return r.rent
}

// SetReturnData fills the transient return-data slot.
func (r *Runtime) SetReturnData(data []byte) {
	r.returnData = data
}

// ReturnData returns the return-data slot of the last invocation.
func (r *Runtime) ReturnData() []byte {
	return r.returnData
}

// CreateAccount creates a zeroed account blob of the given size, owned by
// owner and funded with lamports, and registers it in the ledger.
func (r *Runtime) CreateAccount(key, owner ed25519.PublicKey, lamports uint64, size int) (*program.AccountInfo, error) {
	id := base58.Encode(key)
	if _, ok := r.accounts[id]; ok {
		return nil, errors.Errorf("account already exists: %s", id)
	}

	info := &program.AccountInfo{
		Key:      key,
		Owner:    owner,
		Lamports: lamports,
		Data:     make([]byte, size),
	}
	r.accounts[id] = info
	return info, nil
}

// CreateProgramAccount creates a rent-exempt account blob owned by the
// token program.
func (r *Runtime) CreateProgramAccount(key ed25519.PublicKey, size int) (*program.AccountInfo, error) {
	return r.CreateAccount(key, program.ProgramKey, r.rent.MinimumBalance(size), size)
}

// CreateSignerAccount creates a system-owned account that acts as a signing
// wallet.
func (r *Runtime) CreateSignerAccount(key ed25519.PublicKey) (*program.AccountInfo, error) {
	info, err := r.CreateAccount(key, program.SystemProgram, 0, 0)
	if err != nil {
		return nil, err
	}
	info.IsSigner = true
	return info, nil
}

// RentSysvarAccount returns the rent sysvar account, creating it on first
// use.
func (r *Runtime) RentSysvarAccount() *program.AccountInfo {
	id := base58.Encode(program.RentSysVar)
	if info, ok := r.accounts[id]; ok {
		return info
	}

	info := &program.AccountInfo{
		Key:  program.RentSysVar,
		Data: r.rent.Marshal(),
	}
	r.accounts[id] = info
	return info
}

// Account looks up an account handle by key.
func (r *Runtime) Account(key ed25519.PublicKey) (*program.AccountInfo, bool) {
	info, ok := r.accounts[base58.Encode(key)]
	return info, ok
}

type accountSnapshot struct {
	info     *program.AccountInfo
	owner    ed25519.PublicKey
	lamports uint64
	data     []byte
}

// Invoke runs one instruction against the given account handles. The same
// underlying account must be passed as the same handle in every slot it
// occupies; handles are snapshotted once and fully restored if the program
// returns an error, mirroring the host's transactional commit.
func (r *Runtime) Invoke(accounts []*program.AccountInfo, data []byte) error {
	r.returnData = nil

	seen := make(map[*program.AccountInfo]struct{}, len(accounts))
	snapshots := make([]accountSnapshot, 0, len(accounts))
	for _, info := range accounts {
		if _, ok := seen[info]; ok {
			continue
		}
		seen[info] = struct{}{}

		snapshot := accountSnapshot{
			info:     info,
			owner:    append(ed25519.PublicKey(nil), info.Owner...),
			lamports: info.Lamports,
		}
		if info.Data != nil {
			snapshot.data = append([]byte(nil), info.Data...)
		}
		snapshots = append(snapshots, snapshot)
	}

	err := processor.Process(r, accounts, data)
	if err != nil {
		for _, s := range snapshots {
			s.info.Owner = s.owner
			s.info.Lamports = s.lamports
			s.info.Data = s.data
		}
		r.returnData = nil
	}

	invocationCounterVec.WithLabelValues(instructionLabel(data), resultLabel(err)).Inc()
	return err
}

func instructionLabel(data []byte) string {
	if len(data) == 0 {
		return "Empty"
	}
	return token.Command(data[0]).String()
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
