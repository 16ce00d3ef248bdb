package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/trip-board/internal/auth"
	"github.com/spec-kit/trip-board/internal/config"
	"github.com/spec-kit/trip-board/internal/domain"
	"github.com/spec-kit/trip-board/internal/repository"
	"github.com/spec-kit/trip-board/internal/service"
	apperrors "github.com/spec-kit/trip-board/pkg/util"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := u
	return &copied, nil
}

func newAuthService(repo repository.UserRepository) *service.AuthService {
	return service.NewAuthService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 168,
		BcryptCost:    bcrypt.MinCost,
	}, repo)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "A", "a@x.com", "p1", "111")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected assigned id")
	}

	stored, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if stored.PasswordHash == "p1" || strings.Contains(stored.PasswordHash, "p1") {
		t.Fatal("plaintext password persisted")
	}
	if err := auth.ComparePassword(stored.PasswordHash, "p1"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "p1", "111"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), "B", "a@x.com", "p2", "222")
	if err == nil {
		t.Fatal("expected conflict error")
	}
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.HTTPStatus != 409 {
		t.Fatalf("err = %v, want 409 conflict", err)
	}
}

func TestLoginIssuesTokenBoundToUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	registered, err := svc.Register(context.Background(), "A", "a@x.com", "p1", "111")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, exp, err := svc.Login(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("user id = %d, want %d", user.ID, registered.ID)
	}
	if time.Until(exp) < 167*time.Hour {
		t.Fatalf("expiry too soon: %v", exp)
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Fatalf("token identity = %d, want %d", claims.UserID, registered.ID)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "A", "a@x.com", "p1", "111"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, _, unknownErr := svc.Login(context.Background(), "nobody@x.com", "p1")
	_, _, _, wrongErr := svc.Login(context.Background(), "a@x.com", "wrong")

	var unknownDE, wrongDE *apperrors.DomainError
	if !errors.As(unknownErr, &unknownDE) || !errors.As(wrongErr, &wrongDE) {
		t.Fatalf("expected domain errors, got %v / %v", unknownErr, wrongErr)
	}
	if unknownDE.HTTPStatus != 401 || wrongDE.HTTPStatus != 401 {
		t.Fatalf("statuses = %d / %d, want 401 / 401", unknownDE.HTTPStatus, wrongDE.HTTPStatus)
	}
	if unknownDE.Code != wrongDE.Code || unknownDE.Message != wrongDE.Message {
		t.Fatalf("unknown-email and wrong-password responses differ: %v vs %v", unknownDE, wrongDE)
	}
}
