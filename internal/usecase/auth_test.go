package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/merchline/merchline/internal/domain/errors"
	"github.com/merchline/merchline/internal/domain/model"
	pkgAuth "github.com/merchline/merchline/internal/pkg/auth"
	testhelpers "github.com/merchline/merchline/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64, role model.Role) (string, error) {
			return fmt.Sprintf("token-%d-%s", userID, role), nil
		},
		ParseFn: func(token string) (int64, model.Role, error) {
			var id int64
			var role string
			if _, err := fmt.Sscanf(token, "token-%d-%s", &id, &role); err != nil {
				return 0, "", pkgAuth.ErrInvalidToken
			}
			return id, model.Role(role), nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "northside", "password", model.RoleRetailer)
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if token != "token-1-retailer" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByLogin(ctx, "northside")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.Role != model.RoleRetailer {
		t.Fatalf("expected retailer role, got %q", stored.Role)
	}
}

func TestAuthUseCaseRegisterRejectsAdmin(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	if _, _, err := uc.Register(context.Background(), "boss", "secret", model.RoleAdmin); err != domainErrors.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole for admin self-registration, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "boss", "secret", model.Role("manager")); err != domainErrors.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole for unknown role, got %v", err)
	}
}

func TestAuthUseCaseRegisterEmptyCredentials(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	if _, _, err := uc.Register(context.Background(), "  ", "secret", model.RoleRetailer); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for blank login, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "shop", "", model.RoleRetailer); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "depot", "secret", model.RoleWholesaler); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "depot", "secret", model.RoleWholesaler); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "corner", "123456", model.RoleRetailer); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "corner", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "missing", "123456"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown login, got %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "corner", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1-retailer" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	id, role, err := uc.ParseToken("token-42-wholesaler")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 || role != model.RoleWholesaler {
		t.Fatalf("expected id 42 and wholesaler role, got %d %q", id, role)
	}

	if _, _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error for empty token, got %v", err)
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	created, _, err := uc.Register(ctx, "depot", "secret", model.RoleWholesaler)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	fetched, err := uc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if fetched.Login != "depot" {
		t.Fatalf("unexpected user %+v", fetched)
	}

	if _, err := uc.GetByID(ctx, 999); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
