package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/barberbook/internal/domain"
	accountRepo "github.com/m04kA/barberbook/internal/infra/storage/account"
	"github.com/m04kA/barberbook/internal/service/session/models"
)

const (
	transitionSignIn  = "sign_in"
	transitionSignOut = "sign_out"
	transitionFailed  = "sign_in_failed"
)

// claims содержимое токена сессии
type claims struct {
	Role string `json:"role"`
	Slug string `json:"slug,omitempty"`
	jwt.RegisteredClaims
}

// Service сервис сессий владельцев
type Service struct {
	accountRepo  AccountRepository
	revoked      RevocationStore
	metrics      Metrics
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	accountRepo AccountRepository,
	revoked RevocationStore,
	metrics Metrics,
	secret string,
	ttl time.Duration,
	logger Logger,
) *Service {
	return &Service{
		accountRepo:  accountRepo,
		revoked:      revoked,
		metrics:      metrics,
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SignIn проверяет email и пароль и выдает токен сессии
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	email := strings.TrimSpace(req.Email)
	s.logger.Info("SignIn: email=%s", email)

	if email == "" || req.Password == "" {
		s.observe(transitionFailed)
		return nil, ErrInvalidCredentials
	}

	// 1. Ищем аккаунт
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("SignIn: unknown email=%s", email)
			s.observe(transitionFailed)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	// 2. Сверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("SignIn: wrong password for account=%s", account.ID)
		s.observe(transitionFailed)
		return nil, ErrInvalidCredentials
	}

	// 3. Выпускаем токен
	now := s.timeProvider.Now()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		Role:      account.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	if account.Slug != nil {
		sess.Slug = *account.Slug
	}

	token, err := s.sign(sess)
	if err != nil {
		s.logger.Error("SignIn: failed to sign token for account=%s: %v", account.ID, err)
		return nil, fmt.Errorf("%w: SignIn - sign token: %v", ErrInternal, err)
	}

	s.observe(transitionSignIn)
	s.logger.Info("SignIn: account=%s signed in, session=%s", account.ID, sess.ID)

	resp := models.FromDomain(sess)
	resp.Email = account.Email
	resp.BusinessName = account.BusinessName

	return &models.SignInResponse{
		AccessToken: token,
		ExpiresAt:   sess.ExpiresAt,
		Session:     resp,
	}, nil
}

// Resolve проверяет токен и возвращает живую сессию
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	sess, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.IsRevoked(ctx, sess.ID)
	if err != nil {
		s.logger.Error("Resolve: revocation store error for session=%s: %v", sess.ID, err)
		return nil, fmt.Errorf("%w: Resolve - revocation store: %v", ErrInternal, err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}

	return sess, nil
}

// Describe дополняет сессию данными аккаунта
func (s *Service) Describe(ctx context.Context, sess *domain.Session) (*models.SessionResponse, error) {
	resp := models.FromDomain(sess)

	account, err := s.accountRepo.GetByID(ctx, sess.AccountID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			s.logger.Warn("Describe: account=%s of session=%s no longer exists", sess.AccountID, sess.ID)
			return nil, ErrInvalidToken
		}
		s.logger.Error("Describe: repository error for account=%s: %v", sess.AccountID, err)
		return nil, fmt.Errorf("%w: Describe - repository error: %v", ErrInternal, err)
	}

	resp.Email = account.Email
	resp.BusinessName = account.BusinessName
	return &resp, nil
}

// SignOut отзывает сессию до истечения ее токена
func (s *Service) SignOut(ctx context.Context, token string) error {
	sess, err := s.parse(token)
	if err != nil {
		return err
	}

	if err := s.revoked.Revoke(ctx, sess.ID, sess.ExpiresAt); err != nil {
		s.logger.Error("SignOut: failed to revoke session=%s: %v", sess.ID, err)
		return fmt.Errorf("%w: SignOut - revoke: %v", ErrInternal, err)
	}

	s.observe(transitionSignOut)
	s.logger.Info("SignOut: account=%s, session=%s", sess.AccountID, sess.ID)
	return nil
}

func (s *Service) sign(sess *domain.Session) (string, error) {
	c := claims{
		Role: string(sess.Role),
		Slug: sess.Slug,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   sess.AccountID.String(),
			IssuedAt:  jwt.NewNumericDate(sess.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *Service) parse(token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	accountID, err := uuid.Parse(c.Subject)
	if err != nil || c.ID == "" {
		return nil, ErrInvalidToken
	}

	sess := &domain.Session{
		ID:        c.ID,
		AccountID: accountID,
		Role:      domain.Role(c.Role),
		Slug:      c.Slug,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		sess.IssuedAt = c.IssuedAt.Time
	}
	return sess, nil
}

func (s *Service) observe(transition string) {
	if s.metrics != nil {
		s.metrics.ObserveSession(transition)
	}
}
