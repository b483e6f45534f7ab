package routes

import (
	"strings"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"
)

func testConfig() *urlkit.Config {
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "admin",
				BaseURL: "https://cms.example.com",
				Paths: map[string]string{
					"thumbnail": "/pictures/:id/thumbnails/:size/:name",
				},
			},
		},
	}
}

func TestResolverBuildsRouteWithParamsAndQuery(t *testing.T) {
	resolver := NewResolverFromConfig(testConfig())
	url, err := resolver.URL("admin", "thumbnail", map[string]any{
		"id":   "42",
		"size": "77x93",
		"name": "portrait.jpg",
	}, map[string]string{"crop": "1"})
	if err != nil {
		t.Fatalf("build url: %v", err)
	}
	if !strings.Contains(url, "/pictures/42/thumbnails/77x93/") {
		t.Fatalf("unexpected url %q", url)
	}
	if !strings.Contains(url, "crop=1") {
		t.Fatalf("expected crop query in %q", url)
	}
}

func TestResolverUnknownGroupOrRoute(t *testing.T) {
	resolver := NewResolverFromConfig(testConfig())
	if _, err := resolver.URL("frontend", "thumbnail", nil, nil); err == nil {
		t.Fatalf("expected unknown group error")
	}
	if _, err := resolver.URL("admin.pictures", "thumbnail", nil, nil); err == nil {
		t.Fatalf("expected unknown child group error")
	}
	if _, err := NewResolverFromConfig(nil).URL("admin", "thumbnail", nil, nil); err != ErrManagerRequired {
		t.Fatalf("expected ErrManagerRequired got %v", err)
	}
}

func TestResolverGroupPath(t *testing.T) {
	resolver := NewResolverFromConfig(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name: "admin",
				Path: "/admin",
				Groups: []urlkit.GroupConfig{
					{Name: "pictures", Path: "/pictures/"},
				},
			},
		},
	})
	if path, ok := resolver.GroupPath("admin"); !ok || path != "/admin" {
		t.Fatalf("expected /admin got %q %v", path, ok)
	}
	if path, ok := resolver.GroupPath("admin.pictures"); !ok || path != "/admin/pictures" {
		t.Fatalf("expected /admin/pictures got %q %v", path, ok)
	}
	if _, ok := resolver.GroupPath("frontend"); ok {
		t.Fatalf("expected unknown group")
	}
	if _, ok := NewResolver(nil).GroupPath("admin"); ok {
		t.Fatalf("expected resolver without config to report false")
	}
}
