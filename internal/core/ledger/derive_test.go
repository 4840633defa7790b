package ledger

import (
	"bytes"
	"errors"
	"testing"
)

func testOwner() Address {
	var owner Address
	for i := range owner {
		owner[i] = byte(i + 1)
	}
	return owner
}

func TestDeriver_KnownVectors(t *testing.T) {
	t.Parallel()

	d := NewDeriver(Address{})
	owner := testOwner()

	if got := owner.String(); got != "4wBqpZM9xaSheZzJSMawUKKwhdpChKbZ5eu5ky4Vigw" {
		t.Fatalf("unexpected owner encoding %s", got)
	}

	company, err := d.CompanyAddress(owner)
	if err != nil {
		t.Fatalf("CompanyAddress returned error: %v", err)
	}
	if company.String() != "DkUK3kYz89BnW7rPufFsLs1gmNhav8pDHCtms7Xdwbhr" {
		t.Fatalf("unexpected company address %s", company)
	}

	var worker Address
	for i := range worker {
		worker[i] = 7
	}

	account, err := d.EmployeeAddress(company, worker)
	if err != nil {
		t.Fatalf("EmployeeAddress returned error: %v", err)
	}
	if account.String() != "D48Q7AF2E9AonVVqN6M6noR2noNYXrySDKZHEswAQLwM" {
		t.Fatalf("unexpected employee address %s", account)
	}

	session, err := d.WorkSessionAddress(account, 42)
	if err != nil {
		t.Fatalf("WorkSessionAddress returned error: %v", err)
	}
	if session.String() != "2t4mnZDA66BamjmDQDjVbbdYa9ZUrhu4kwhKTA2unGcm" {
		t.Fatalf("unexpected work session address %s", session)
	}
}

func TestFindProgramAddress_SkipsOnCurveBump(t *testing.T) {
	t.Parallel()

	d := NewDeriver(Address{})
	account := MustParseAddress("D48Q7AF2E9AonVVqN6M6noR2noNYXrySDKZHEswAQLwM")
	seeds := [][]byte{[]byte(WorkSessionSeed), account[:], {42, 0, 0, 0, 0, 0, 0, 0}}

	addr, bump, err := FindProgramAddress(seeds, d.ProgramID())
	if err != nil {
		t.Fatalf("FindProgramAddress returned error: %v", err)
	}
	if bump != 254 {
		t.Fatalf("expected bump 254, got %d", bump)
	}

	if _, err := CreateProgramAddress(append(seeds, []byte{255}), d.ProgramID()); !errors.Is(err, ErrInvalidSeeds) {
		t.Fatalf("expected bump 255 to land on curve, got %v", err)
	}

	again, err := CreateProgramAddress(append(seeds, []byte{bump}), d.ProgramID())
	if err != nil {
		t.Fatalf("CreateProgramAddress returned error: %v", err)
	}
	if again != addr {
		t.Fatalf("expected %s, got %s", addr, again)
	}
}

func TestFindProgramAddress_DoesNotMutateSeeds(t *testing.T) {
	t.Parallel()

	owner := testOwner()
	seeds := make([][]byte, 2, 3)
	seeds[0] = []byte(CompanySeed)
	seeds[1] = owner[:]

	if _, _, err := FindProgramAddress(seeds, DefaultProgramID); err != nil {
		t.Fatalf("FindProgramAddress returned error: %v", err)
	}
	if len(seeds) != 2 || !bytes.Equal(seeds[0], []byte(CompanySeed)) {
		t.Fatalf("seeds mutated: %v", seeds)
	}
}

func TestFindProgramAddress_SeedTooLong(t *testing.T) {
	t.Parallel()

	_, _, err := FindProgramAddress([][]byte{make([]byte, maxSeedLength+1)}, DefaultProgramID)
	if !errors.Is(err, ErrInvalidSeeds) {
		t.Fatalf("expected ErrInvalidSeeds, got %v", err)
	}
}

func TestDeriver_DistinctSessions(t *testing.T) {
	t.Parallel()

	d := NewDeriver(Address{})
	account := MustParseAddress("D48Q7AF2E9AonVVqN6M6noR2noNYXrySDKZHEswAQLwM")

	first, err := d.WorkSessionAddress(account, 1)
	if err != nil {
		t.Fatalf("WorkSessionAddress returned error: %v", err)
	}
	second, err := d.WorkSessionAddress(account, 2)
	if err != nil {
		t.Fatalf("WorkSessionAddress returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct addresses per session id")
	}
}

func TestParseAddress_Invalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "0OIl", "4wBqpZM9"} {
		if _, err := ParseAddress(raw); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("ParseAddress(%q): expected ErrInvalidAddress, got %v", raw, err)
		}
	}
}

func TestAddress_TextRoundTrip(t *testing.T) {
	t.Parallel()

	owner := testOwner()
	text, err := owner.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText returned error: %v", err)
	}

	var decoded Address
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}
	if decoded != owner {
		t.Fatalf("expected %s, got %s", owner, decoded)
	}
}
