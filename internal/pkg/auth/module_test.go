package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/merchline/merchline/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher()
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy, err := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "top-secret"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if string(jwtStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(jwtStrategy.secret))
	}
	if jwtStrategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", jwtStrategy.ttl)
	}
}

func TestNewTokenStrategySelection(t *testing.T) {
	strategy, err := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "s", AuthStrategy: "hmac"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := strategy.(*HMACStrategy); !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected strategy name %q", strategy.Name())
	}

	if _, err := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "s", AuthStrategy: "plaintext"}}); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
