package repo

import (
	"context"
	"testing"
	"time"

	"github.com/evalai/evalai-backend/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return NewStore(db)
}

func TestStore_MissingCollectionIsEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	got, err := s.Companies(ctx)
	if err != nil {
		t.Fatalf("Companies: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %v", got)
	}

	sess, err := s.Session(ctx)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil session, got %v", sess)
	}
}

func TestStore_WholesaleReplace(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := []domain.Company{{ID: "c1", Name: "Acme"}, {ID: "c2", Name: "Globex"}}
	if err := s.SaveCompanies(ctx, first); err != nil {
		t.Fatalf("SaveCompanies: %v", err)
	}

	got, err := s.Companies(ctx)
	if err != nil {
		t.Fatalf("Companies: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c1" || got[1].Name != "Globex" {
		t.Fatalf("unexpected collection %v", got)
	}

	// A save replaces the collection entirely, never merges.
	if err := s.SaveCompanies(ctx, []domain.Company{{ID: "c3", Name: "Initech"}}); err != nil {
		t.Fatalf("SaveCompanies: %v", err)
	}
	got, _ = s.Companies(ctx)
	if len(got) != 1 || got[0].ID != "c3" {
		t.Fatalf("replace failed, got %v", got)
	}
}

func TestStore_SubmissionsKeepOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subs := []domain.Submission{
		{ID: "s3", EvaluationID: "e1", UserID: "u1", Answers: []int{0, 1}, Score: 50, Timestamp: 3},
		{ID: "s2", EvaluationID: "e1", UserID: "u2", Answers: []int{1, 1}, Score: 100, Timestamp: 2},
		{ID: "s1", EvaluationID: "e2", UserID: "u1", Answers: []int{0, 0}, Score: 0, Timestamp: 1},
	}
	if err := s.SaveSubmissions(ctx, subs); err != nil {
		t.Fatalf("SaveSubmissions: %v", err)
	}
	got, err := s.Submissions(ctx)
	if err != nil {
		t.Fatalf("Submissions: %v", err)
	}
	for i := range subs {
		if got[i].ID != subs[i].ID {
			t.Fatalf("order not preserved: %v", got)
		}
	}
}

func TestStore_SessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := &domain.User{ID: "u1", Name: "Ana", Username: "ana", Role: domain.RoleEmployee}
	if err := s.SetSession(ctx, u); err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	got, err := s.Session(ctx)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if got == nil || got.ID != "u1" || got.Username != "ana" {
		t.Fatalf("session mismatch: %v", got)
	}

	if err := s.SetSession(ctx, nil); err != nil {
		t.Fatalf("SetSession(nil): %v", err)
	}
	got, err = s.Session(ctx)
	if err != nil {
		t.Fatalf("Session after clear: %v", err)
	}
	if got != nil {
		t.Fatalf("expected cleared session, got %v", got)
	}
}

func TestBackup_RoundTripIsByteIdentical(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveCompanies(ctx, []domain.Company{{ID: "c1", Name: "Acme"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveUsers(ctx, []domain.User{
		{ID: "u1", Name: "Ana", Username: "ana", Password: "pw", Role: domain.RoleEmployee, CompanyID: "c1"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveEvaluations(ctx, []domain.Evaluation{{
		ID: "e1", Title: "Onboarding", Theme: "Processos",
		Questions: []domain.Question{{Prompt: "p", Options: []string{"a", "b", "c", "d", "e"}, Correct: 2, Rationale: "r"}},
		Target:    domain.Target{CompanyID: "c1"},
		CreatedAt: 1700000000000, Published: true,
	}}); err != nil {
		t.Fatal(err)
	}

	before := map[string]string{}
	for _, key := range CollectionKeys {
		if raw, ok, err := s.GetRaw(ctx, key); err != nil {
			t.Fatal(err)
		} else if ok {
			before[key] = raw
		}
	}

	exported, err := s.ExportAll(ctx)
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}

	// Import into a fresh store and compare raw documents.
	fresh := openTestStore(t)
	if err := fresh.ImportAll(ctx, exported); err != nil {
		t.Fatalf("ImportAll: %v", err)
	}
	for key, want := range before {
		got, ok, err := fresh.GetRaw(ctx, key)
		if err != nil || !ok {
			t.Fatalf("key %s missing after import (err=%v)", key, err)
		}
		if got != want {
			t.Errorf("key %s changed by round-trip:\n got  %s\n want %s", key, got, want)
		}
	}
}

func TestImportAll_InvalidJSONLeavesStoreUntouched(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveCompanies(ctx, []domain.Company{{ID: "c1", Name: "Acme"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.ImportAll(ctx, []byte("{not json")); err == nil {
		t.Fatalf("expected parse error")
	}
	got, _ := s.Companies(ctx)
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("store mutated by failed import: %v", got)
	}
}

func TestSubmissionKeys_DuplicateAndReplay(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ttl := time.Hour

	rec, err := CreateSubmissionKey(ctx, s.DB(), "u1", "e1", "k1", "sub-1", ttl)
	if err != nil {
		t.Fatalf("CreateSubmissionKey: %v", err)
	}
	if rec.SubmissionID != "sub-1" {
		t.Fatalf("unexpected record %v", rec)
	}

	if _, err := CreateSubmissionKey(ctx, s.DB(), "u1", "e1", "k1", "sub-2", ttl); err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	got, err := GetSubmissionKey(ctx, s.DB(), "u1", "e1", "k1", time.Now())
	if err != nil {
		t.Fatalf("GetSubmissionKey: %v", err)
	}
	if got.SubmissionID != "sub-1" {
		t.Fatalf("replay returned %q; want sub-1", got.SubmissionID)
	}

	// Blank keys never match.
	if _, err := GetSubmissionKey(ctx, s.DB(), "u1", "e1", "", time.Now()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for blank key, got %v", err)
	}
}
