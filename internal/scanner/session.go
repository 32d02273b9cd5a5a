// Package scanner simulates the in-store barcode scanner: a session is
// opened against a validated list, items get scanned one by one (or by the
// demo's automatic mode), and completing the session closes the store run.
package scanner

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScannedItem is one product in the cart, accumulated across repeat scans.
type ScannedItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	OnList    bool            `json:"on_list"`
	ScannedAt time.Time       `json:"scanned_at"`
}

// Session is a store run in progress.
type Session struct {
	ID        string          `json:"id"`
	ListID    string          `json:"list_id"`
	StartedAt time.Time       `json:"started_at"`
	Items     []ScannedItem   `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Savings   decimal.Decimal `json:"savings"`

	expiresAt time.Time
}

func newSession(listID string, now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.NewString(),
		ListID:    listID,
		StartedAt: now.UTC(),
		Items:     []ScannedItem{},
		Total:     decimal.Zero,
		Savings:   decimal.Zero,
		expiresAt: now.Add(ttl),
	}
}

func (s *Session) findItem(productID string) int {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// sessionStore keeps live sessions in memory. Expired sessions are dropped
// lazily on access.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: map[string]*Session{}}
}

func (s *sessionStore) put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *sessionStore) get(id string, now time.Time) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if now.After(session.expiresAt) {
		delete(s.sessions, id)
		return nil
	}
	return session
}

func (s *sessionStore) delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
