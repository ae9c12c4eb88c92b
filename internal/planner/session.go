package planner

import (
	"context"
	"log"
	"sync"

	resp "roadtrip/internal/models/response_models"
	"roadtrip/pkg/keyvalue"
)

// Session is the single source of truth for "is a user logged in". The
// signed-in user's id is mirrored into a durable slot so the session can be
// restored on the next launch.
type Session struct {
	mu    sync.RWMutex
	store Store
	slot  keyvalue.Slot
	user  *resp.User
}

func NewSession(store Store, slot keyvalue.Slot) *Session {
	return &Session{store: store, slot: slot}
}

// Login delegates to the store's login-or-create contract. On failure the
// session is left untouched and the error goes back to the caller.
func (s *Session) Login(ctx context.Context, name, email, profilePictureURL string) (resp.User, error) {
	user, err := s.store.LoginOrCreateUser(ctx, name, email, profilePictureURL)
	if err != nil {
		return resp.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if err := s.slot.Write(ctx, user.ID); err != nil {
		log.Printf("Failed to persist session id: %v", err)
	}

	return user, nil
}

// Restore rebuilds the session from the persisted id. Every failure mode
// falls back silently to logged-out; a stale id additionally clears the slot
// so the next launch does not retry it.
func (s *Session) Restore(ctx context.Context) {
	id, err := s.slot.Read(ctx)
	if err != nil || id == "" {
		return
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if clearErr := s.slot.Clear(ctx); clearErr != nil {
			log.Printf("Failed to clear stale session id: %v", clearErr)
		}
		return
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
}

// Logout clears the session and the persisted id unconditionally. It never
// contacts the store.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.slot.Clear(ctx); err != nil {
		log.Printf("Failed to clear session id: %v", err)
	}
}

func (s *Session) Current() (resp.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return resp.User{}, false
	}
	return *s.user, true
}
