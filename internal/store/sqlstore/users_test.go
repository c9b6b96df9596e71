package sqlstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/models"
	"github.com/akash4797/secure-encryption-decyrption-app/internal/store"
)

func newUser(username string) *models.User {
	return &models.User{
		Username: username,
		Password: "$2a$10$hash",
		Email:    "enc-email",
		Phone:    "enc-phone",
		Location: "enc-location",
		Gender:   models.GenderFemale,
	}
}

func TestCreateUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()
	ctx := context.Background()

	u := newUser("testuser")
	if err := testStore.CreateUser(ctx, u); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if u.ID == 0 {
		t.Error("Expected ID to be assigned")
	}
	if u.CreatedAt.IsZero() {
		t.Error("Expected created_at to be filled")
	}

	// Test duplicate user
	err := testStore.CreateUser(ctx, newUser("testuser"))
	if !errors.Is(err, store.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate for duplicate user, got %v", err)
	}

	got, err := testStore.GetUserByUsername(ctx, "testuser")
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if got.ID != u.ID || got.Email != "enc-email" {
		t.Errorf("Original record changed after duplicate insert: %+v", got)
	}
}

func TestCreateUser_ConcurrentDuplicates(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = testStore.CreateUser(ctx, newUser("racer"))
		}(i)
	}
	wg.Wait()

	ok, dup := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, store.ErrDuplicate):
			dup++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 || dup != n-1 {
		t.Errorf("expected exactly one winner, got ok=%d dup=%d", ok, dup)
	}
}

func TestGetUserByUsername(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()
	ctx := context.Background()

	testStore.CreateUser(ctx, newUser("testuser"))

	user, err := testStore.GetUserByUsername(ctx, "testuser")
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if user.Username != "testuser" {
		t.Errorf("Expected username 'testuser', got '%s'", user.Username)
	}
	if user.Gender != models.GenderFemale {
		t.Errorf("Expected gender FEMALE, got %q", user.Gender)
	}
	if user.Bio != "" || user.Post != "" {
		t.Errorf("Expected empty bio/post, got %q/%q", user.Bio, user.Post)
	}

	_, err = testStore.GetUserByUsername(ctx, "nonexistent")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for nonexistent user, got %v", err)
	}
}

func TestUpdateUserProfile(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()
	ctx := context.Background()

	orig := newUser("alice")
	testStore.CreateUser(ctx, orig)

	updated, err := testStore.UpdateUserProfile(ctx, "alice", models.ProfileFields{
		Email:  "enc-new-email",
		Bio:    "enc-bio",
		Gender: models.GenderMale,
	})
	if err != nil {
		t.Fatalf("UpdateUserProfile failed: %v", err)
	}
	if updated.ID != orig.ID || updated.Username != "alice" {
		t.Errorf("identity changed: %+v", updated)
	}
	if updated.Email != "enc-new-email" || updated.Bio != "enc-bio" || updated.Gender != models.GenderMale {
		t.Errorf("fields not written: %+v", updated)
	}
	if updated.Phone != "" || updated.Location != "" || updated.Post != "" {
		t.Errorf("omitted fields should be cleared: %+v", updated)
	}
	if updated.Password != orig.Password {
		t.Error("password must not be touched by a profile update")
	}

	_, err = testStore.UpdateUserProfile(ctx, "ghost", models.ProfileFields{Gender: models.GenderMale})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound updating a missing user, got %v", err)
	}
}

func TestUpdateUserProfile_RejectsInvalidGender(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()
	ctx := context.Background()

	testStore.CreateUser(ctx, newUser("alice"))

	_, err := testStore.UpdateUserProfile(ctx, "alice", models.ProfileFields{Gender: "OTHER"})
	if err == nil {
		t.Error("Expected CHECK constraint failure for invalid gender")
	}
}
