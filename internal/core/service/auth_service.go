package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/chirpnet/social-api/internal/api/metrics"
	"github.com/chirpnet/social-api/internal/core/domain"
	"github.com/chirpnet/social-api/internal/core/ports"
	"github.com/chirpnet/social-api/internal/core/token"
)

const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 24 * time.Hour
)

// AuthService implements signup, login and token refresh.
type AuthService struct {
	users      ports.UserRepository
	codec      *token.Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, accessTTL, refreshTTL time.Duration, log zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &AuthService{users: users, codec: codec, accessTTL: accessTTL, refreshTTL: refreshTTL, log: log}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	email := strings.ToLower(in.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UID:          newUID(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  in.DisplayName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", user.UID).Msg("user registered")
	metrics.SignupsTotal.Inc()

	return user, nil
}

// Login verifies the credential pair and mints an access+refresh token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrCouldNotAuthenticate
	}

	bearer, err := s.issue(user.UID, token.ScopeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issue(user.UID, token.ScopeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", user.UID).Msg("token pair issued")

	return &ports.TokenPair{Bearer: bearer, Refresh: refresh}, nil
}

// Refresh mints a fresh access token for an already-verified refresh-scope
// principal. The refresh token itself is never reissued here.
func (s *AuthService) Refresh(ctx context.Context, principal *domain.User) (*ports.IssuedToken, error) {
	issued, err := s.issue(principal.UID, token.ScopeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", principal.UID).Msg("access token refreshed")

	return &issued, nil
}

func (s *AuthService) issue(uid string, scope token.Scope, ttl time.Duration) (ports.IssuedToken, error) {
	raw, err := s.codec.Issue(uid, scope, ttl)
	if err != nil {
		return ports.IssuedToken{}, err
	}
	metrics.TokensIssuedTotal.WithLabelValues(string(scope)).Inc()
	return ports.IssuedToken{Token: raw, ExpiresIn: int64(ttl.Seconds())}, nil
}
