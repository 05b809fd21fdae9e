package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
)

// Claims are the identity assertions extracted from a verified token.
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// TokenVerifier validates a raw identity token and returns its claims.
// Implementations must reject expired or mis-signed tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}

// DisabledVerifier rejects every token. It stands in when no identity
// provider is configured.
type DisabledVerifier struct{}

// Verify always fails.
func (DisabledVerifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	return nil, fmt.Errorf("identity provider not configured")
}

// FirebaseVerifier validates Firebase ID tokens through the provider's
// OIDC discovery endpoint.
type FirebaseVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewFirebaseVerifier discovers the securetoken issuer for the given
// project and prepares an ID-token verifier with the project ID as the
// expected audience.
func NewFirebaseVerifier(ctx context.Context, projectID string) (*FirebaseVerifier, error) {
	trimmed := strings.TrimSpace(projectID)
	if trimmed == "" {
		return nil, fmt.Errorf("firebase project id is required")
	}

	issuer := "https://securetoken.google.com/" + trimmed
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("discover identity provider: %w", err)
	}

	return &FirebaseVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: trimmed}),
	}, nil
}

// Verify checks signature, issuer, audience and expiry, then extracts
// the subject plus optional email and display name claims.
func (f *FirebaseVerifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	idToken, err := f.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&payload); err != nil {
		return nil, err
	}

	return &Claims{
		Subject: idToken.Subject,
		Email:   payload.Email,
		Name:    payload.Name,
	}, nil
}
