// Package auth issues, verifies and revokes the service's bearer tokens.
//
// Access tokens are stateless: signature plus expiry is the whole check.
// Refresh tokens are double-checked: a valid signature is necessary but
// not sufficient, the signature part must also still have a row in the
// database. That row is what makes logout effective immediately.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/wellmind-app/backend/internal/gormw"
	"github.com/wellmind-app/backend/internal/models"
	"github.com/wellmind-app/backend/internal/storage"
)

var (
	logger = log.With().Str("component", "auth").Logger()
)

const (
	typClaim   = "typ"
	typAccess  = "access"
	typRefresh = "refresh"
)

type Authenticator struct {
	config *Config
	db     *gormw.DB

	privateKey jwk.Key
	publicKey  jwk.Key
}

func New(config *Config, db *gormw.DB) *Authenticator {
	priv, err := jwk.ParseKey([]byte(config.PrivateKeyPEM), jwk.WithPEM(true))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse private key")
	}

	pub, err := priv.PublicKey()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate public key")
	}

	return &Authenticator{
		config:     config,
		db:         db,
		privateKey: priv,
		publicKey:  pub,
	}
}

// IssueAccessToken signs a short-lived stateless token for the user.
func (a *Authenticator) IssueAccessToken(user *models.User) (string, error) {
	token, err := jwt.NewBuilder().
		Issuer(a.config.Issuer).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(a.config.AccessTokenTTLDuration())).
		Subject(strconv.FormatUint(uint64(user.ID), 10)).
		Claim(typClaim, typAccess).
		Claim("role", user.Role).
		Build()

	if err != nil {
		return "", fmt.Errorf("failed to build access token claims: %v", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256(), a.privateKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %v", err)
	}

	return string(signed), nil
}

// IssueRefreshToken signs a refresh token and persists its signature part.
// If the row cannot be stored the token is not handed out at all, so an
// issued-but-unstored token never exists from the caller's point of view.
func (a *Authenticator) IssueRefreshToken(user *models.User) (string, error) {
	token, err := jwt.NewBuilder().
		Issuer(a.config.Issuer).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(a.config.RefreshTokenTTLDuration())).
		Subject(strconv.FormatUint(uint64(user.ID), 10)).
		JwtID(uuid.New().String()).
		Claim(typClaim, typRefresh).
		Build()

	if err != nil {
		return "", fmt.Errorf("failed to build refresh token claims: %v", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256(), a.privateKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %v", err)
	}

	sign := strings.Split(string(signed), ".")[2]
	if err := storage.AddRefreshToken(a.db, &models.RefreshToken{
		Sign:      sign,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(a.config.RefreshTokenTTLDuration()),
	}); err != nil {
		return "", fmt.Errorf("%w: storing refresh token: %v", ErrPersistence, err)
	}

	return string(signed), nil
}

// VerifyAccessToken checks signature, expiry and subject, nothing else.
// Every rejection reason maps to ErrInvalidToken.
func (a *Authenticator) VerifyAccessToken(token string) (uint, error) {
	return a.verify(token, typAccess)
}

// VerifyRefreshToken checks what VerifyAccessToken checks, then requires a
// live row for the token's signature part. Revoked means deleted, so a
// missing row is ErrInvalidToken even when the signature is fine.
func (a *Authenticator) VerifyRefreshToken(token string) (uint, error) {
	userID, err := a.verify(token, typRefresh)
	if err != nil {
		return 0, err
	}

	sign := strings.Split(token, ".")[2]
	if _, err := storage.GetRefreshTokenBySign(a.db, sign); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidToken
		}
		return 0, fmt.Errorf("%w: fetching refresh token: %v", ErrPersistence, err)
	}

	return userID, nil
}

func (a *Authenticator) verify(token string, wantTyp string) (uint, error) {
	if len(strings.Split(token, ".")) != 3 {
		return 0, ErrInvalidToken
	}

	// Parse verifies the signature and rejects expired tokens.
	verified, err := jwt.Parse([]byte(token), jwt.WithKey(jwa.RS256(), a.publicKey))
	if err != nil {
		return 0, ErrInvalidToken
	}

	iss, ok := verified.Issuer()
	if !ok || iss != a.config.Issuer {
		return 0, ErrInvalidToken
	}

	if _, ok := verified.Expiration(); !ok {
		return 0, ErrInvalidToken
	}

	var typ string
	if err := verified.Get(typClaim, &typ); err != nil || typ != wantTyp {
		return 0, ErrInvalidToken
	}

	sub, ok := verified.Subject()
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}

// RevokeRefreshToken deletes the token's row. Unknown, malformed and
// already-revoked tokens are all fine to revoke; only a store failure is
// reported.
func (a *Authenticator) RevokeRefreshToken(token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil
	}
	if err := storage.DeleteRefreshTokenBySign(a.db, parts[2]); err != nil {
		return fmt.Errorf("%w: deleting refresh token: %v", ErrPersistence, err)
	}
	return nil
}
