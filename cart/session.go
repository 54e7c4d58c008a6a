package cart

import (
	"encoding/json"
	"log"
)

const sessionKey = "session"

type sessionState struct {
	IsAdmin bool `json:"isAdmin"`
}

// Session holds the client-local admin flag. It gates UI affordances only;
// it is not an authorization boundary and the server never checks it.
type Session struct {
	store Store
}

func NewSession(store Store) *Session {
	return &Session{store: store}
}

// IsAdmin reports the stored flag. Missing or corrupt data reads as false,
// and a corrupt entry is cleared.
func (s *Session) IsAdmin() bool {
	raw, ok, err := s.store.Get(sessionKey)
	if err != nil || !ok {
		return false
	}
	var state sessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Printf("cart: discarding corrupt session entry: %v", err)
		if err := s.store.Delete(sessionKey); err != nil {
			log.Printf("cart: failed to clear corrupt session entry: %v", err)
		}
		return false
	}
	return state.IsAdmin
}

func (s *Session) SetAdmin(isAdmin bool) error {
	raw, err := json.Marshal(sessionState{IsAdmin: isAdmin})
	if err != nil {
		return err
	}
	return s.store.Set(sessionKey, raw)
}

func (s *Session) Clear() error {
	return s.store.Delete(sessionKey)
}
