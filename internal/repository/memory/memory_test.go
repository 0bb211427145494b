package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/repository/memory"
)

var (
	_ domain.UserRepository             = (*memory.UserRepository)(nil)
	_ domain.ProgressStore              = (*memory.ProgressStore)(nil)
	_ domain.EmergencyContactRepository = (*memory.EmergencyContactRepository)(nil)
	_ domain.ShelterRepository          = (*memory.ShelterRepository)(nil)
	_ domain.CertificateRepository      = (*memory.CertificateRepository)(nil)
)

func TestProgressStore_ScopedByUser(t *testing.T) {
	store := memory.NewProgressStore()
	ctx := context.Background()

	if err := store.Upsert(ctx, domain.ProgressRow{UserID: "alice", ModuleID: "1", VideoWatched: true}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.Upsert(ctx, domain.ProgressRow{UserID: "bob", ModuleID: "1", QuizScore: 50}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	rows, err := store.FetchAll(ctx, "alice")
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("alice has %d rows, want 1", len(rows))
	}
	if !rows[0].VideoWatched || rows[0].QuizScore != 0 {
		t.Fatalf("alice's row = %+v, contains bob's data", rows[0])
	}
}

func TestProgressStore_UpsertReplacesAndStamps(t *testing.T) {
	store := memory.NewProgressStore()
	ctx := context.Background()

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := store.Upsert(ctx, domain.ProgressRow{UserID: "alice", ModuleID: "1", QuizScore: 40, UpdatedAt: old}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := store.Upsert(ctx, domain.ProgressRow{UserID: "alice", ModuleID: "1", QuizScore: 90}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	rows, _ := store.FetchAll(ctx, "alice")
	if len(rows) != 1 {
		t.Fatalf("got %d rows after upsert, want 1", len(rows))
	}
	if rows[0].QuizScore != 90 {
		t.Errorf("score = %d, want the replacement's 90", rows[0].QuizScore)
	}
	if !rows[0].UpdatedAt.After(old) {
		t.Error("UpdatedAt not stamped by the store")
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	first := &domain.User{Email: "a@example.com", DisplayName: "A", PasswordHash: "x"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == "" {
		t.Fatal("Create did not assign an ID")
	}

	dup := &domain.User{Email: "a@example.com", DisplayName: "B", PasswordHash: "y"}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCertificateRepository_FirstWriteWins(t *testing.T) {
	repo := memory.NewCertificateRepository()
	ctx := context.Background()

	first := &domain.Certificate{ID: "cert-1", UserID: "alice", RecipientName: "Alice", IssuedAt: time.Now()}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second := &domain.Certificate{ID: "cert-2", UserID: "alice", RecipientName: "Other", IssuedAt: time.Now()}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("second Create: %v", err)
	}

	got, err := repo.GetByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if got.ID != "cert-1" {
		t.Errorf("surviving certificate = %s, want the first one", got.ID)
	}
}
