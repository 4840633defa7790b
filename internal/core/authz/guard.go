package authz

import (
	"fmt"

	"github.com/ogurasousui/codex-payroll-ledger/internal/core/ledger"
)

// Guard は署名者の検証と、参照アカウントが正しい親から導出されたかの検証を行います。
// 状態を持たないため値で受け渡して構いません。
type Guard struct {
	deriver ledger.Deriver
}

// NewGuard は Guard を生成します。
func NewGuard(deriver ledger.Deriver) Guard {
	return Guard{deriver: deriver}
}

// RequireSigner は署名者が指定されていることを確認します。
func RequireSigner(signer ledger.Address) error {
	if signer.IsZero() {
		return fmt.Errorf("missing signer: %w", ledger.ErrUnauthorized)
	}
	return nil
}

// RequireOwner は署名者が会社オーナーと一致することを確認します。
func RequireOwner(signer, owner ledger.Address) error {
	if err := RequireSigner(signer); err != nil {
		return err
	}
	if signer != owner {
		return fmt.Errorf("signer %s is not the company owner: %w", signer, ledger.ErrUnauthorized)
	}
	return nil
}

// RequireEmployee は署名者が社員本人と一致することを確認します。
func RequireEmployee(signer, employee ledger.Address) error {
	if err := RequireSigner(signer); err != nil {
		return err
	}
	if signer != employee {
		return fmt.Errorf("signer %s is not the employee: %w", signer, ledger.ErrUnauthorized)
	}
	return nil
}

// VerifyCompanyAccount は account が ("company", owner) から導出されたものか確認します。
func (g Guard) VerifyCompanyAccount(account, owner ledger.Address) error {
	expected, err := g.deriver.CompanyAddress(owner)
	if err != nil {
		return err
	}
	return matchDerived("company", account, expected)
}

// VerifyEmployeeAccount は account が ("employee", company, employee) から導出されたものか確認します。
func (g Guard) VerifyEmployeeAccount(account, company, employee ledger.Address) error {
	expected, err := g.deriver.EmployeeAddress(company, employee)
	if err != nil {
		return err
	}
	return matchDerived("employee", account, expected)
}

// VerifyWorkSessionAccount は account が ("work_session", employeeAccount, sessionID) から導出されたものか確認します。
func (g Guard) VerifyWorkSessionAccount(account, employeeAccount ledger.Address, sessionID uint64) error {
	expected, err := g.deriver.WorkSessionAddress(employeeAccount, sessionID)
	if err != nil {
		return err
	}
	return matchDerived("work session", account, expected)
}

// AuthorizeOwner はオーナー専用操作の事前条件をまとめて検証します。
func (g Guard) AuthorizeOwner(signer, company, owner ledger.Address) error {
	if err := RequireOwner(signer, owner); err != nil {
		return err
	}
	return g.VerifyCompanyAccount(company, owner)
}

// AuthorizeEmployee は社員本人専用操作の事前条件をまとめて検証します。
// company には操作対象として指定された会社アドレスを渡します。
func (g Guard) AuthorizeEmployee(signer, account, company, employee ledger.Address) error {
	if err := RequireEmployee(signer, employee); err != nil {
		return err
	}
	return g.VerifyEmployeeAccount(account, company, employee)
}

func matchDerived(kind string, got, expected ledger.Address) error {
	if got != expected {
		return fmt.Errorf("%s account %s was not derived from the claimed parent: %w", kind, got, ledger.ErrUnauthorized)
	}
	return nil
}
