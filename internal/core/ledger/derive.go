package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
)

// アドレス導出に用いるシードです。永続化済みの状態と互換性を保つため変更してはいけません。
const (
	CompanySeed     = "company"
	EmployeeSeed    = "employee"
	WorkSessionSeed = "work_session"
)

const (
	maxSeeds      = 16
	maxSeedLength = 32
	pdaMarker     = "ProgramDerivedAddress"
)

// DefaultProgramID は派生アドレスの名前空間として使うプログラム ID の既定値です。
var DefaultProgramID = MustParseAddress("jQrBRLbEtgwUdvcaetiWJJR3HztTEkER3W2tC8A4Vt3")

var (
	// ErrInvalidSeeds はシードが長すぎる、または結果が曲線上の点になった場合に返却されます。
	ErrInvalidSeeds = errors.New("ledger: invalid seeds")
	// ErrNoViableBump はすべての bump で曲線外のアドレスが得られなかった場合に返却されます。
	ErrNoViableBump = errors.New("ledger: no viable bump seed")
)

// CreateProgramAddress はシードとプログラム ID から派生アドレスを計算します。
// 結果が ed25519 の曲線上の点になる場合は ErrInvalidSeeds を返します。
func CreateProgramAddress(seeds [][]byte, programID Address) (Address, error) {
	if len(seeds) > maxSeeds {
		return Address{}, fmt.Errorf("%d seeds: %w", len(seeds), ErrInvalidSeeds)
	}

	h := sha256.New()
	for _, seed := range seeds {
		if len(seed) > maxSeedLength {
			return Address{}, fmt.Errorf("seed of %d bytes: %w", len(seed), ErrInvalidSeeds)
		}
		h.Write(seed)
	}
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var addr Address
	copy(addr[:], h.Sum(nil))
	if isOnCurve(addr) {
		return Address{}, fmt.Errorf("address on curve: %w", ErrInvalidSeeds)
	}
	return addr, nil
}

// FindProgramAddress は bump を 255 から順に試し、最初に得られた曲線外のアドレスを返します。
func FindProgramAddress(seeds [][]byte, programID Address) (Address, uint8, error) {
	for _, seed := range seeds {
		if len(seed) > maxSeedLength {
			return Address{}, 0, fmt.Errorf("seed of %d bytes: %w", len(seed), ErrInvalidSeeds)
		}
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{byte(bump)}
		addr, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return addr, uint8(bump), nil
		}
		if len(seeds) >= maxSeeds || !errors.Is(err, ErrInvalidSeeds) {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, ErrNoViableBump
}

func isOnCurve(addr Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err == nil
}

// Deriver は会社・社員・勤務セッションのアドレスを導出します。
type Deriver struct {
	programID Address
}

// NewDeriver は Deriver を生成します。programID がゼロ値なら DefaultProgramID を使います。
func NewDeriver(programID Address) Deriver {
	if programID.IsZero() {
		programID = DefaultProgramID
	}
	return Deriver{programID: programID}
}

// ProgramID は導出に使うプログラム ID を返します。
func (d Deriver) ProgramID() Address {
	if d.programID.IsZero() {
		return DefaultProgramID
	}
	return d.programID
}

// CompanyAddress は ("company", owner) から会社アドレスを導出します。
func (d Deriver) CompanyAddress(owner Address) (Address, error) {
	return d.find([]byte(CompanySeed), owner[:])
}

// EmployeeAddress は ("employee", company, employee) から社員アカウントのアドレスを導出します。
func (d Deriver) EmployeeAddress(company, employee Address) (Address, error) {
	return d.find([]byte(EmployeeSeed), company[:], employee[:])
}

// WorkSessionAddress は ("work_session", employeeAccount, sessionID(LE 8 バイト)) から導出します。
func (d Deriver) WorkSessionAddress(employeeAccount Address, sessionID uint64) (Address, error) {
	var id [8]byte
	binary.LittleEndian.PutUint64(id[:], sessionID)
	return d.find([]byte(WorkSessionSeed), employeeAccount[:], id[:])
}

func (d Deriver) find(seeds ...[]byte) (Address, error) {
	addr, _, err := FindProgramAddress(seeds, d.ProgramID())
	if err != nil {
		return Address{}, fmt.Errorf("ledger: derive address: %w", err)
	}
	return addr, nil
}
