package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/wayfarer/internal/config"
	"github.com/mrlokans/wayfarer/internal/database"
	"github.com/mrlokans/wayfarer/internal/entities"
)

// memoryUserStore is an in-memory UserStore with hooks for failure injection.
type memoryUserStore struct {
	byID      map[string]*entities.User
	nextID    int
	createErr error
	lookupErr error
	// hideOnLookup makes GetUserByEmail miss, simulating a concurrent signup
	hideOnLookup bool
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{byID: map[string]*entities.User{}}
}

func (s *memoryUserStore) CreateUser(_ context.Context, user *entities.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.byID {
		if existing.Email == user.Email {
			return database.ErrDuplicate
		}
	}
	s.nextID++
	user.ID = fmt.Sprintf("user-%d", s.nextID)
	user.CreatedAt = time.Now()
	stored := *user
	s.byID[user.ID] = &stored
	return nil
}

func (s *memoryUserStore) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	if s.hideOnLookup {
		return nil, database.ErrNotFound
	}
	for _, user := range s.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *memoryUserStore) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	user, ok := s.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func newTestService(t *testing.T, store UserStore) (*Service, *TokenService) {
	t.Helper()
	tokens := newTestTokenService(t, &fakeClock{now: time.Now()})
	return NewService(store, tokens, config.Auth{BcryptCost: bcrypt.MinCost}), tokens
}

func TestService_Signup(t *testing.T) {
	svc, tokens := newTestService(t, newMemoryUserStore())

	user, token, err := svc.Signup(context.Background(), " A ", " A@X.com ", "p1")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if user.Name != "A" || user.Email != "a@x.com" {
		t.Errorf("unexpected user %+v", user)
	}
	if user.PasswordHash == "" || user.PasswordHash == "p1" {
		t.Error("expected password to be hashed")
	}

	userID, err := tokens.Verify(token)
	if err != nil || userID != user.ID {
		t.Errorf("token verifies to (%q, %v), want %q", userID, err, user.ID)
	}
}

func TestService_SignupValidation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"missing name", "", "a@x.com", "p1", ErrSignupFieldsRequired},
		{"blank name", "   ", "a@x.com", "p1", ErrSignupFieldsRequired},
		{"missing email", "A", "", "p1", ErrSignupFieldsRequired},
		{"missing password", "A", "a@x.com", "", ErrSignupFieldsRequired},
		{"invalid email", "A", "not-an-email", "p1", ErrEmailInvalid},
		{"email without tld", "A", "a@x", "p1", ErrEmailInvalid},
		{"password too long", "A", "a@x.com", string(make([]byte, 73)), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryUserStore()
			svc, _ := newTestService(t, store)

			_, _, err := svc.Signup(context.Background(), tt.userName, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Signup() error = %v, want %v", err, tt.wantErr)
			}
			if len(store.byID) != 0 {
				t.Error("expected no user to be created")
			}
		})
	}
}

func TestService_SignupDuplicateEmail(t *testing.T) {
	store := newMemoryUserStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "A", "a@x.com", "p1"); err != nil {
		t.Fatalf("first Signup() error = %v", err)
	}

	_, _, err := svc.Signup(ctx, "B", "A@x.com", "p2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Signup() error = %v, want ErrEmailTaken", err)
	}
	if len(store.byID) != 1 {
		t.Errorf("expected 1 user, got %d", len(store.byID))
	}
}

func TestService_SignupUniqueViolationIsConflict(t *testing.T) {
	store := newMemoryUserStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "A", "a@x.com", "p1"); err != nil {
		t.Fatalf("first Signup() error = %v", err)
	}

	// The pre-check misses, the unique index catches it
	store.hideOnLookup = true
	_, _, err := svc.Signup(ctx, "A", "a@x.com", "p1")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Signup() error = %v, want ErrEmailTaken", err)
	}
}

func TestService_SignupStoreFailure(t *testing.T) {
	store := newMemoryUserStore()
	store.lookupErr = errors.New("connection refused")
	svc, _ := newTestService(t, store)

	_, _, err := svc.Signup(context.Background(), "A", "a@x.com", "p1")
	if err == nil || errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected internal error, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	store := newMemoryUserStore()
	svc, tokens := newTestService(t, store)
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, "A", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	user, token, err := svc.Login(ctx, "A@X.COM", "p1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("Login() user = %q, want %q", user.ID, created.ID)
	}
	if userID, err := tokens.Verify(token); err != nil || userID != created.ID {
		t.Errorf("token verifies to (%q, %v)", userID, err)
	}
}

func TestService_LoginFailures(t *testing.T) {
	store := newMemoryUserStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "A", "a@x.com", "p1"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"missing email", "", "p1", ErrLoginFieldsRequired},
		{"missing password", "a@x.com", "", ErrLoginFieldsRequired},
		{"unknown email", "b@x.com", "p1", ErrInvalidCredentials},
		{"wrong password", "a@x.com", "p2", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_Me(t *testing.T) {
	store := newMemoryUserStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, "A", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	user, err := svc.Me(ctx, created.ID)
	if err != nil || user.Email != "a@x.com" {
		t.Errorf("Me() = (%+v, %v)", user, err)
	}

	if _, err := svc.Me(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Me() error = %v, want ErrUserNotFound", err)
	}
}

func TestNewUserView_OmitsPassword(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	view := NewUserView(&entities.User{
		ID:           "u1",
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "secret-hash",
		CreatedAt:    created,
	})

	if view.ID != "u1" || view.Name != "A" || view.Email != "a@x.com" || !view.CreatedAt.Equal(created) {
		t.Errorf("unexpected view %+v", view)
	}
}
