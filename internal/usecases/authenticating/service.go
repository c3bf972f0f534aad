package authenticating

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/internal/domain"
	"github.com/vfg2006/sales-report-api/pkg/apiErrors"
	"github.com/vfg2006/sales-report-api/pkg/log"
	"github.com/vfg2006/sales-report-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL = 24 * time.Hour

	// DownloadPurpose marks tokens that may only fetch the sales report file
	DownloadPurpose = "sales-report-download"
)

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	// IssueDownloadToken signs a short-lived token that allows one report download
	IssueDownloadToken(claims *domain.Claims) (string, time.Time, error)
	// ConsumeDownloadToken validates a download token and burns it
	ConsumeDownloadToken(tokenString string) (*domain.DownloadClaims, error)
	// SweepDownloadTokens forgets burned tokens that have expired anyway
	SweepDownloadTokens() int
}

type Service struct {
	userRepo   repository.UserRepository
	secretKey  []byte
	tokenTTL   time.Duration
	now        func() time.Time
	usedMutex  sync.Mutex
	usedTokens map[string]time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo:   userRepo,
		secretKey:  []byte(cfg.SecretKey),
		tokenTTL:   cfg.DownloadToken.TTL,
		now:        time.Now,
		usedTokens: make(map[string]time.Time),
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "wrong password")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "signing session token")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Info("auth: user logged in")

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserActive: user.Active,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secretKey, nil
}

func (s *Service) parse(tokenString string, claims jwt.Claims) error {
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc, jwt.WithTimeFunc(s.now))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
	default:
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	// download tokens carry no session identity
	if claims.UserID == 0 {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "not a session token")
	}
	return claims, nil
}

func (s *Service) IssueDownloadToken(claims *domain.Claims) (string, time.Time, error) {
	if claims == nil {
		return "", time.Time{}, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "no session")
	}

	id, err := utils.GenerateTokenID()
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "auth: generate download token id")
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.DownloadClaims{
		UserID:  claims.UserID,
		Purpose: DownloadPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "auth: sign download token")
	}

	return signed, expiresAt, nil
}

func (s *Service) ConsumeDownloadToken(tokenString string) (*domain.DownloadClaims, error) {
	claims := &domain.DownloadClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}

	if claims.Purpose != DownloadPurpose || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "not a download token")
	}

	s.usedMutex.Lock()
	defer s.usedMutex.Unlock()

	if _, used := s.usedTokens[claims.ID]; used {
		return nil, NewUserAuthError(ErrTokenAlreadyUsed, apiErrors.ErrTokenAlreadyUsed, claims.UserID, "")
	}
	s.usedTokens[claims.ID] = claims.ExpiresAt.Time

	return claims, nil
}

func (s *Service) SweepDownloadTokens() int {
	now := s.now()

	s.usedMutex.Lock()
	defer s.usedMutex.Unlock()

	removed := 0
	for id, expiresAt := range s.usedTokens {
		if now.After(expiresAt) {
			delete(s.usedTokens, id)
			removed++
		}
	}

	return removed
}
