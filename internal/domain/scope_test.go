package domain

import "testing"

func TestTargetScope(t *testing.T) {
	cases := map[string]struct {
		target Target
		want   ScopeKind
	}{
		"empty":               {Target{}, ScopeGlobal},
		"company only":        {Target{CompanyID: "c1"}, ScopeCompany},
		"company+sector":      {Target{CompanyID: "c1", SectorID: "s1"}, ScopeSector},
		"company+role":        {Target{CompanyID: "c1", RoleID: "r1"}, ScopeRole},
		"company+sector+role": {Target{CompanyID: "c1", SectorID: "s1", RoleID: "r1"}, ScopeRole},
	}
	for name, tc := range cases {
		if got := tc.target.Scope(); got != tc.want {
			t.Errorf("%s: Scope() = %v; want %v", name, got, tc.want)
		}
	}
}

// TestTargetMatches enumerates every combination of company/sector/role
// presence against a fixed user.
func TestTargetMatches(t *testing.T) {
	u := User{ID: "u1", CompanyID: "A", SectorID: "X", RoleID: "R"}

	cases := []struct {
		name   string
		target Target
		want   bool
	}{
		{"global", Target{}, true},
		{"same company", Target{CompanyID: "A"}, true},
		{"other company", Target{CompanyID: "B"}, false},
		{"same sector", Target{CompanyID: "A", SectorID: "X"}, true},
		{"other sector", Target{CompanyID: "A", SectorID: "Y"}, false},
		{"same role any sector", Target{CompanyID: "A", RoleID: "R"}, true},
		{"other role", Target{CompanyID: "A", RoleID: "Q"}, false},
		{"exact cohort", Target{CompanyID: "A", SectorID: "X", RoleID: "R"}, true},
		{"cohort wrong role", Target{CompanyID: "A", SectorID: "X", RoleID: "Q"}, false},
		{"cohort wrong sector", Target{CompanyID: "A", SectorID: "Y", RoleID: "R"}, false},
	}
	for _, tc := range cases {
		if got := tc.target.Matches(u); got != tc.want {
			t.Errorf("%s: Matches = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestTargetMatchesUserWithoutCompany(t *testing.T) {
	u := User{ID: "u2"} // no org fields at all

	if !(Target{}).Matches(u) {
		t.Fatalf("global target must match a user without a company")
	}
	if (Target{CompanyID: "A"}).Matches(u) {
		t.Fatalf("company target must not match a user without a company")
	}
}

func TestQuestionValid(t *testing.T) {
	five := []string{"a", "b", "c", "d", "e"}

	cases := []struct {
		name string
		q    Question
		want bool
	}{
		{"ok", Question{Options: five, Correct: 0}, true},
		{"last index", Question{Options: five, Correct: 4}, true},
		{"negative", Question{Options: five, Correct: -1}, false},
		{"out of range", Question{Options: five, Correct: 5}, false},
		{"four options", Question{Options: five[:4], Correct: 0}, false},
		{"six options", Question{Options: append([]string{"x"}, five...), Correct: 0}, false},
	}
	for _, tc := range cases {
		if got := tc.q.Valid(); got != tc.want {
			t.Errorf("%s: Valid = %v; want %v", tc.name, got, tc.want)
		}
	}
}
