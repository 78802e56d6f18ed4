package services

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"

	"Flicks/config"
)

const sessionName = "flicks-session"

// SessionStore wraps the cookie store used to carry flash messages across
// the post/redirect/get cycle.
type SessionStore struct {
	store *sessions.CookieStore
}

func NewSessionStore(cfg *config.Config) *SessionStore {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionStore{store: store}
}

func (s *SessionStore) GetSession(r *http.Request) (*sessions.Session, error) {
	return s.store.Get(r, sessionName)
}

func (s *SessionStore) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	session, err := s.GetSession(r)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Flashes pops every pending flash message. The session is saved so the
// messages are shown only once; a broken cookie yields no messages.
func (s *SessionStore) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := s.GetSession(r)
	if err != nil {
		return nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	session.Save(r, w)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
