package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/savasana/yoga-web/internal/app/models"
)

// Store is the single source of truth for "is someone logged in, and who".
// At most one AuthSession is active at a time; absence means logged out.
// It is constructed once and passed by reference to guards and controllers,
// which only ever read it. Mutation happens through LogIn and LogOut alone.
type Store struct {
	logger *zap.Logger

	mu      sync.RWMutex
	current *models.AuthSession
	subs    map[int]chan bool
	nextSub int
}

func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		logger: logger,
		subs:   make(map[int]chan bool),
	}
}

// LogIn replaces the current session and notifies every observer. The last
// LogIn wins; there is no session stacking.
func (s *Store) LogIn(sess models.AuthSession) {
	s.mu.Lock()
	s.current = &sess
	s.publishLocked(true)
	s.mu.Unlock()

	l := s.logger.With(zap.Int64("userID", sess.UserID), zap.Bool("admin", sess.Admin))
	if exp, err := TokenExpiresAt(sess.Token); err == nil {
		l = l.With(zap.Time("tokenExpiresAt", exp))
	}
	l.Info("Session opened")
}

// LogOut clears the current session and notifies every observer. Calling it
// while already logged out is a no-op apart from the notification.
func (s *Store) LogOut() {
	s.mu.Lock()
	s.current = nil
	s.publishLocked(false)
	s.mu.Unlock()

	s.logger.Info("Session closed")
}

// IsLogged is a synchronous snapshot of the login state.
func (s *Store) IsLogged() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Current returns a copy of the active session, if any.
func (s *Store) Current() (models.AuthSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.AuthSession{}, false
	}
	return *s.current, true
}

// UserID returns the id of the logged-in user.
func (s *Store) UserID() (int64, bool) {
	sess, ok := s.Current()
	if !ok {
		return 0, false
	}
	return sess.UserID, true
}

// IsAdmin reports whether the logged-in user has the admin role. False when
// logged out.
func (s *Store) IsAdmin() bool {
	sess, ok := s.Current()
	return ok && sess.Admin
}

// Token returns the bearer token of the active session, or "" when logged out.
func (s *Store) Token() string {
	sess, ok := s.Current()
	if !ok {
		return ""
	}
	return sess.Token
}

// Observe returns a channel that immediately replays the current login state
// and then receives every subsequent transition. Late subscribers get the
// latest value, not history. A subscriber that falls behind sees only the
// most recent value: a stale pending value is dropped before the next send,
// so LogIn and LogOut never block on a slow receiver. Because delivery
// happens on the subscriber's own channel, calling LogIn or LogOut from a
// receive loop cannot deadlock the store.
//
// The returned cancel function detaches the subscriber and closes the
// channel; it must be called when the observing view goes away.
func (s *Store) Observe() (<-chan bool, func()) {
	ch := make(chan bool, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.current != nil
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Store) publishLocked(logged bool) {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- logged
	}
}
