package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CookieName identifies the visitor's session.  Theme preference and
// the admin token live in their own cookies; the session cookie only
// carries an opaque ID.
const CookieName = "sid"

// Manager hands out and stores per-visitor State, keyed by a random
// session ID set as a cookie.  Sessions idle longer than ttl are evicted
// by a background janitor so abandoned visitors do not accumulate.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*State
	ttl      time.Duration
	newDate  func() string // initial travel date for fresh sessions
}

// NewManager builds a Manager.  ttl bounds session idle time; newDate
// supplies the default travel date (today) for new sessions and exists
// as a hook so tests can pin the clock.
func NewManager(ttl time.Duration, newDate func() string) *Manager {
	if newDate == nil {
		newDate = func() string { return time.Now().Format("2006-01-02") }
	}
	m := &Manager{
		sessions: make(map[string]*State),
		ttl:      ttl,
		newDate:  newDate,
	}
	go m.janitor()
	return m
}

// Acquire returns the State for the request's session, creating a new
// session and setting the cookie when the visitor has none.
func (m *Manager) Acquire(c echo.Context) *State {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		m.mu.Lock()
		st, ok := m.sessions[cookie.Value]
		m.mu.Unlock()
		if ok {
			st.touch()
			return st
		}
	}
	id := uuid.NewString()
	st := NewState(m.newDate())
	m.mu.Lock()
	m.sessions[id] = st
	m.mu.Unlock()
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return st
}

// janitor periodically drops sessions idle past the TTL.
func (m *Manager) janitor() {
	interval := m.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	for {
		time.Sleep(interval)
		now := time.Now()
		m.mu.Lock()
		for id, st := range m.sessions {
			if st.idle(now) > m.ttl {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
