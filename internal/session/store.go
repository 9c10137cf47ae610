package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"library-lending/internal/model"
)

// Store holds verified-session capabilities in process. Entries expire
// with the cache TTL; Get re-checks the recorded expiry instant so a
// stale cache entry can never extend a session.
type Store struct {
	cache *expirable.LRU[string, model.Session]
	ttl   time.Duration
}

// NewStore creates a session store. size bounds the number of live
// sessions; ttl is the session lifetime.
func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = 4096
	}
	return &Store{
		cache: expirable.NewLRU[string, model.Session](size, nil, ttl),
		ttl:   ttl,
	}
}

// Issue mints a new session bound to the member's phone.
func (s *Store) Issue(memberID int64, phone string, now time.Time) model.Session {
	sess := model.Session{
		Token:     uuid.NewString(),
		MemberID:  memberID,
		Phone:     phone,
		ExpiresAt: now.Add(s.ttl),
	}
	s.cache.Add(sess.Token, sess)
	return sess
}

// Get returns the session for token if it exists and has not expired.
func (s *Store) Get(token string, now time.Time) (model.Session, bool) {
	sess, ok := s.cache.Get(token)
	if !ok || sess.Expired(now) {
		return model.Session{}, false
	}
	return sess, true
}

// Revoke drops a session.
func (s *Store) Revoke(token string) {
	s.cache.Remove(token)
}
