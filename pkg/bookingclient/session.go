package bookingclient

import (
	"context"
	"sort"
	"sync"
)

// SessionState состояние сессии приложения
type SessionState int

const (
	StateAnonymous SessionState = iota
	StateAuthenticated
)

func (s SessionState) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// SessionEvent уведомление о смене сессии
type SessionEvent struct {
	State   SessionState
	Session *Session // nil для анонимного состояния
}

// SessionGate явный контекст сессии приложения
// Поверхности получают его параметром и подписываются на смену состояния.
// Уведомления доставляются синхронно, в порядке подписки
type SessionGate struct {
	client *Client

	mu      sync.Mutex
	token   string
	session *Session
	subs    map[uint64]func(SessionEvent)
	nextID  uint64
	closed  bool
}

// Subscription подписка на смену сессии
type Subscription struct {
	gate *SessionGate
	id   uint64
	once sync.Once
}

// NewSessionGate создает анонимный контекст сессии
func NewSessionGate(client *Client) *SessionGate {
	return &SessionGate{
		client: client,
		subs:   make(map[uint64]func(SessionEvent)),
	}
}

// State текущее состояние
func (g *SessionGate) State() SessionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

// Session текущая сессия, если она есть
func (g *SessionGate) Session() (*Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session == nil {
		return nil, false
	}
	sess := *g.session
	return &sess, true
}

// Client клиент API: с токеном сессии, если она есть
func (g *SessionGate) Client() *Client {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.token == "" {
		return g.client
	}
	return g.client.WithToken(g.token)
}

// Restore восстанавливает сессию по сохраненному токену
// Недействительный токен оставляет контекст анонимным
func (g *SessionGate) Restore(ctx context.Context, token string) error {
	sess, err := g.client.WithToken(token).Session(ctx)
	if err != nil {
		return err
	}
	g.set(token, sess)
	return nil
}

// SignIn входит и уведомляет подписчиков
func (g *SessionGate) SignIn(ctx context.Context, email, password string) (*Session, error) {
	resp, err := g.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	g.set(resp.AccessToken, &resp.Session)
	return &resp.Session, nil
}

// SignOut выходит и уведомляет подписчиков
// Локальная сессия сбрасывается даже при ошибке отзыва на сервере
func (g *SessionGate) SignOut(ctx context.Context) error {
	g.mu.Lock()
	token := g.token
	g.mu.Unlock()

	if token == "" {
		return nil
	}

	err := g.client.WithToken(token).SignOut(ctx)
	g.set("", nil)
	return err
}

// Subscribe подписывает fn на смену сессии
// После Close контекста возвращает уже закрытую подписку
func (g *SessionGate) Subscribe(fn func(SessionEvent)) *Subscription {
	g.mu.Lock()
	defer g.mu.Unlock()

	sub := &Subscription{gate: g}
	if g.closed || fn == nil {
		return sub
	}

	g.nextID++
	sub.id = g.nextID
	g.subs[sub.id] = fn
	return sub
}

// Close отписывает всех подписчиков
func (g *SessionGate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	g.subs = make(map[uint64]func(SessionEvent))
}

// Subscribers количество активных подписок
func (g *SessionGate) Subscribers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subs)
}

// Close отписывает подписчика, повторный вызов ничего не делает
func (s *Subscription) Close() {
	s.once.Do(func() {
		if s.id == 0 {
			return
		}
		s.gate.mu.Lock()
		delete(s.gate.subs, s.id)
		s.gate.mu.Unlock()
	})
}

func (g *SessionGate) set(token string, sess *Session) {
	g.mu.Lock()
	g.token = token
	g.session = sess

	event := SessionEvent{State: g.stateLocked()}
	if sess != nil {
		cp := *sess
		event.Session = &cp
	}

	ids := make([]uint64, 0, len(g.subs))
	for id := range g.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	listeners := make([]func(SessionEvent), 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, g.subs[id])
	}
	g.mu.Unlock()

	// Вызываем вне блокировки: подписчик может читать состояние или отписаться
	for _, fn := range listeners {
		fn(event)
	}
}

func (g *SessionGate) stateLocked() SessionState {
	if g.session == nil {
		return StateAnonymous
	}
	return StateAuthenticated
}
