package domain

// ScopeKind names the narrowing level of an evaluation target. The level is
// derived from which foreign-key fields are present: no company means global,
// a company with neither sector nor role means the whole company, and so on.
// A role-set/sector-unset target means "this company, any sector, this role".
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeCompany
	ScopeSector
	ScopeRole
)

// Target narrows which users may take an evaluation. Empty fields mean "no
// restriction at that level".
type Target struct {
	CompanyID string `json:"companyId,omitempty"`
	SectorID  string `json:"sectorId,omitempty"`
	RoleID    string `json:"roleId,omitempty"`
}

// Scope classifies the target by the most specific field it sets.
func (t Target) Scope() ScopeKind {
	switch {
	case t.CompanyID == "":
		return ScopeGlobal
	case t.RoleID != "":
		return ScopeRole
	case t.SectorID != "":
		return ScopeSector
	default:
		return ScopeCompany
	}
}

// Matches reports whether u falls inside the target scope. Every check is
// independent: a user with no company can only match a global target, since
// an empty CompanyID never equals a set one.
func (t Target) Matches(u User) bool {
	if t.CompanyID == "" {
		return true
	}
	if t.CompanyID != u.CompanyID {
		return false
	}
	if t.SectorID != "" && t.SectorID != u.SectorID {
		return false
	}
	if t.RoleID != "" && t.RoleID != u.RoleID {
		return false
	}
	return true
}
