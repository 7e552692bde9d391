package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/api/handlers"
	"github.com/m04kA/barberbook/internal/domain"
)

type contextKey string

const (
	sessionKey contextKey = "session"
	tokenKey   contextKey = "session_token"
)

const (
	msgUnauthorized = "требуется вход"
	msgForbidden    = "доступ запрещен"
)

// Authenticator извлекает сессию из Bearer токена или cookie
type Authenticator struct {
	sessions   SessionResolver
	cookieName string
	logger     Logger
}

// NewAuthenticator создает middleware аутентификации
func NewAuthenticator(sessions SessionResolver, cookieName string, logger Logger) *Authenticator {
	return &Authenticator{
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Required пропускает только запросы с живой сессией, иначе 401
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := a.authenticate(r)
		if !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional кладет сессию в контекст, если она есть, и пропускает запрос в любом случае
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx, ok := a.authenticate(r); ok {
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// Token возвращает токен запроса: сначала Authorization, затем cookie
func (a *Authenticator) Token(r *http.Request) string {
	if token := handlers.BearerToken(r); token != "" {
		return token
	}
	if a.cookieName == "" {
		return ""
	}
	if c, err := r.Cookie(a.cookieName); err == nil {
		return c.Value
	}
	return ""
}

func (a *Authenticator) authenticate(r *http.Request) (context.Context, bool) {
	token := a.Token(r)
	if token == "" {
		return nil, false
	}

	sess, err := a.sessions.Resolve(r.Context(), token)
	if err != nil {
		a.logger.Warn("%s %s - session rejected: %v", r.Method, r.URL.Path, err)
		return nil, false
	}

	ctx := context.WithValue(r.Context(), sessionKey, sess)
	ctx = context.WithValue(ctx, tokenKey, token)
	return ctx, true
}

// RequireRole пропускает только сессии с ролью, которой разрешено управлять расписанием
// Используется после Required
func RequireRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSession(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		if !sess.Role.CanManageSchedule() {
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithSession кладет сессию в контекст (для тестов обработчиков)
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession возвращает сессию из контекста
func GetSession(ctx context.Context) (*domain.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*domain.Session)
	return sess, ok && sess != nil
}

// GetAccountID возвращает ID аккаунта текущей сессии
func GetAccountID(ctx context.Context) (uuid.UUID, bool) {
	sess, ok := GetSession(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return sess.AccountID, true
}

// GetToken возвращает токен, по которому была найдена сессия
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}
