package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	apperrors "admin-dashboard-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// ProviderSkip marks sessions issued through the demo skip-login path.
// Such sessions bypass the SSO collaborator entirely; they are a demo
// affordance, not a security boundary.
const ProviderSkip = "skip"

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	Subject   string    `json:"subject"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Provider             string `json:"provider" example:"your-company-domain.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SessionResponse represents an issued dashboard session
type SessionResponse struct {
	AccessToken  string `json:"accessToken"`
	TokenType    string `json:"tokenType" example:"bearer"`
	ExpiresIn    int64  `json:"expiresIn" example:"3600"`
	RefreshToken string `json:"refreshToken,omitempty"`
	Provider     string `json:"provider"`
}

// AuthStartResponse represents the response for the SSO start endpoint
type AuthStartResponse struct {
	URL string `json:"url"`
}

// AuthValidateResponse represents the response from the token validation
// endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// AuthService provides the thin SSO collaborator: it negotiates the OAuth2
// code flow with the provider registered for a domain and issues session
// tokens. The core treats it as opaque.
type AuthService struct {
	config        *AuthConfig
	oauthConfigs  map[string]*oauth2.Config
	refreshTokens map[string]*RefreshTokenData // in-memory store, session-scoped
	tokenMutex    sync.RWMutex
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	oauthConfigs := make(map[string]*oauth2.Config)
	for domain, p := range config.Providers {
		oauthConfigs[domain] = &oauth2.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURL:  p.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  p.AuthURL,
				TokenURL: p.TokenURL,
			},
		}
	}

	return &AuthService{
		config:        config,
		oauthConfigs:  oauthConfigs,
		refreshTokens: make(map[string]*RefreshTokenData),
	}, nil
}

// StartSSO returns the provider authorization URL for the given domain
func (s *AuthService) StartSSO(domain, state string) (string, error) {
	cfg, ok := s.oauthConfigs[domain]
	if !ok {
		return "", apperrors.ErrUnknownSSODomain
	}
	return cfg.AuthCodeURL(state), nil
}

// CompleteSSO exchanges the authorization code with the provider and issues
// a dashboard session. Provider failures surface as AuthenticationError so
// the login form can display them; they are non-fatal and retryable.
func (s *AuthService) CompleteSSO(ctx context.Context, domain, code string) (*SessionResponse, error) {
	cfg, ok := s.oauthConfigs[domain]
	if !ok {
		return nil, apperrors.ErrUnknownSSODomain
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("SSO negotiation failed: %v", err))
	}
	if !token.Valid() {
		return nil, apperrors.NewAuthenticationError("SSO provider returned an invalid token")
	}

	return s.issueSession("sso:"+domain, domain)
}

// SkipLogin issues an unauthenticated demo session without contacting any
// provider
func (s *AuthService) SkipLogin() (*SessionResponse, error) {
	return s.issueSession("demo", ProviderSkip)
}

func (s *AuthService) issueSession(subject, provider string) (*SessionResponse, error) {
	ttl := time.Duration(s.config.TokenTTLMinutes) * time.Minute
	now := time.Now()

	claims := &AuthClaims{
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "admin-dashboard-backend",
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	refresh, err := s.generateRefreshToken(subject, provider, now)
	if err != nil {
		return nil, err
	}

	return &SessionResponse{
		AccessToken:  signed,
		TokenType:    "bearer",
		ExpiresIn:    int64(ttl.Seconds()),
		RefreshToken: refresh,
		Provider:     provider,
	}, nil
}

// ValidateJWT parses and validates a session token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("invalid token: %v", err))
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	return claims, nil
}

// Refresh exchanges a refresh token for a new session
func (s *AuthService) Refresh(refreshToken string) (*SessionResponse, error) {
	s.tokenMutex.Lock()
	data, ok := s.refreshTokens[refreshToken]
	if ok {
		delete(s.refreshTokens, refreshToken)
	}
	s.tokenMutex.Unlock()

	if !ok {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if time.Now().After(data.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	return s.issueSession(data.Subject, data.Provider)
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(refreshToken string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

func (s *AuthService) generateRefreshToken(subject, provider string, now time.Time) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	s.tokenMutex.Lock()
	s.refreshTokens[token] = &RefreshTokenData{
		Subject:   subject,
		Provider:  provider,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return token, nil
}
