package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/framelight/internal/db"
	"gorm.io/gorm"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expiry, malformed token or provider error. Callers treat it as an
// authentication failure, never as a server fault.
var ErrInvalidToken = errors.New("invalid identity token")

// Service exchanges identity tokens for local user records.
type Service struct {
	db       *gorm.DB
	verifier TokenVerifier
}

// NewService constructs an auth Service.
func NewService(gdb *gorm.DB, verifier TokenVerifier) *Service {
	return &Service{db: gdb, verifier: verifier}
}

// Authenticate verifies the raw token and maps its subject to exactly
// one local user, creating the record on first sight. The provider's
// email claim is the source of truth: a stored email that differs is
// updated in place.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (*db.User, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrInvalidToken
	}

	claims, err := s.verifier.Verify(ctx, rawToken)
	if err != nil {
		log.Printf("identity token rejected: %v", err)
		return nil, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		log.Printf("identity token carried no subject")
		return nil, ErrInvalidToken
	}

	var user db.User
	err = s.db.Where("username = ?", claims.Subject).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		first, last := splitName(claims.Name)
		user = db.User{
			Username:  claims.Subject,
			Email:     claims.Email,
			FirstName: first,
			LastName:  last,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	if user.Email != claims.Email {
		user.Email = claims.Email
		if err := s.db.Model(&user).Update("email", claims.Email).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
