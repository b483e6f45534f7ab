package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-cms-editor/internal/languages"
	"github.com/goliatone/go-cms-editor/internal/session"
)

var testKey = strings.Repeat("k", 32)

func TestNewStoreRequiresKeys(t *testing.T) {
	if _, err := session.NewStore("", nil); !errors.Is(err, session.ErrKeysRequired) {
		t.Fatalf("expected ErrKeysRequired got %v", err)
	}
	if _, err := session.NewStore("", []string{"short"}); !errors.Is(err, session.ErrKeyTooShort) {
		t.Fatalf("expected ErrKeyTooShort got %v", err)
	}
}

func TestMiddlewarePlacesLanguageOnContext(t *testing.T) {
	store, err := session.NewStore("", []string{testKey})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	languageID := uuid.New()

	rec := httptest.NewRecorder()
	if err := store.SetLanguage(rec, httptest.NewRequest(http.MethodPost, "/admin/languages/switch", nil), languageID); err != nil {
		t.Fatalf("set language: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != session.DefaultName {
		t.Fatalf("expected session cookie, got %v", cookies)
	}

	var got uuid.UUID
	handler := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = languages.CurrentID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/admin/pages", nil)
	req.AddCookie(cookies[0])
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != languageID {
		t.Fatalf("expected language %s got %s", languageID, got)
	}
}

func TestMiddlewareWithoutSession(t *testing.T) {
	store, err := session.NewStore("editor", []string{testKey})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	called := false
	handler := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := languages.CurrentID(r.Context()); ok {
			t.Fatalf("expected no language on context")
		}
	}))
	req := httptest.NewRequest(http.MethodGet, "/admin/pages", nil)
	req.AddCookie(&http.Cookie{Name: "editor", Value: "tampered"})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !called {
		t.Fatalf("expected next handler to run")
	}
}
