package session

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/goliatone/go-cms-editor/internal/languages"
	"github.com/goliatone/go-cms-editor/internal/logging"
	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

const (
	// DefaultName is the cookie name used when none is configured.
	DefaultName = "editor_session"

	languageKey   = "language_id"
	minKeyLength  = 32
	sessionMaxAge = 60 * 60 * 12
)

var (
	ErrKeysRequired = errors.New("session: at least one key is required")
	ErrKeyTooShort  = errors.New("session: authentication keys must be at least 32 bytes")
)

// Store keeps the language an editor works on in a signed cookie.
type Store struct {
	name   string
	store  *sessions.CookieStore
	logger interfaces.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report unreadable sessions.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		s.logger = logging.Ensure(logger)
	}
}

// NewStore builds a cookie backed store. Keys are passed to gorilla/sessions
// as given: authentication key first, optionally followed by an encryption
// key, for each rotation generation.
func NewStore(name string, keys []string, opts ...Option) (*Store, error) {
	if len(keys) == 0 {
		return nil, ErrKeysRequired
	}
	pairs := make([][]byte, 0, len(keys))
	for i, key := range keys {
		if i%2 == 0 && len(key) < minKeyLength {
			return nil, ErrKeyTooShort
		}
		pairs = append(pairs, []byte(key))
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}

	cookies := sessions.NewCookieStore(pairs...)
	cookies.Options.Path = "/"
	cookies.Options.HttpOnly = true
	cookies.Options.SameSite = http.SameSiteLaxMode
	cookies.Options.MaxAge = sessionMaxAge

	s := &Store{name: name, store: cookies, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SetLanguage stores the language the editor switched to.
func (s *Store) SetLanguage(w http.ResponseWriter, r *http.Request, languageID uuid.UUID) error {
	sess, err := s.store.Get(r, s.name)
	if err != nil && sess == nil {
		return err
	}
	if languageID == uuid.Nil {
		delete(sess.Values, languageKey)
	} else {
		sess.Values[languageKey] = languageID.String()
	}
	sess.Options.Secure = r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
	return sess.Save(r, w)
}

// Language returns the language stored on the request session.
func (s *Store) Language(r *http.Request) (uuid.UUID, bool) {
	sess, err := s.store.Get(r, s.name)
	if err != nil {
		s.logger.Debug("session.decode_failed", "error", err)
		return uuid.Nil, false
	}
	raw, ok := sess.Values[languageKey].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// Middleware places the session language on the request context so
// languages.Service.CurrentLanguageID picks it up.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := s.Language(r); ok {
			r = r.WithContext(languages.WithCurrent(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
