package auth

import (
	"time"

	"github.com/merchline/merchline/internal/domain/model"
)

// Strategy issues and verifies session tokens carrying the user identity and
// the role consulted by every authorized operation.
type Strategy interface {
	IssueToken(userID int64, role model.Role) (string, error)
	ParseToken(token string) (int64, model.Role, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
