package routes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrManagerRequired = errors.New("routes: route manager not configured")

// Resolver builds admin URLs from named go-urlkit routes. Groups are
// addressed with dotted paths such as "admin" or "admin.pictures".
type Resolver struct {
	manager *urlkit.RouteManager
	config  *urlkit.Config
}

// NewResolver wraps manager.
func NewResolver(manager *urlkit.RouteManager) *Resolver {
	return &Resolver{manager: manager}
}

// NewResolverFromConfig builds the route manager from cfg.
func NewResolverFromConfig(cfg *urlkit.Config) *Resolver {
	if cfg == nil {
		return &Resolver{}
	}
	return &Resolver{manager: urlkit.NewRouteManager(cfg), config: cfg}
}

// GroupPath returns the path prefix of the dotted group, joined from the
// configured group paths. It reports false when the resolver was not built
// from a config or the group is unknown.
func (r *Resolver) GroupPath(group string) (string, bool) {
	if r == nil || r.config == nil {
		return "", false
	}
	groups := r.config.Groups
	prefix := ""
	for _, name := range strings.Split(strings.TrimSpace(group), ".") {
		found := false
		for _, candidate := range groups {
			if candidate.Name == name {
				prefix += "/" + strings.Trim(candidate.Path, "/")
				groups = candidate.Groups
				found = true
				break
			}
		}
		if !found {
			return "", false
		}
	}
	if prefix == "" {
		return "/", true
	}
	return strings.ReplaceAll(prefix, "//", "/"), true
}

// URL renders route inside group. Query keys are applied in sorted order so
// the output is stable.
func (r *Resolver) URL(group, route string, params map[string]any, query map[string]string) (string, error) {
	if r == nil || r.manager == nil {
		return "", ErrManagerRequired
	}
	target, err := r.group(group)
	if err != nil {
		return "", err
	}
	builder, err := safeBuilder(target, route)
	if err != nil {
		return "", err
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}
	keys := make([]string, 0, len(query))
	for key := range query {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		builder.WithQuery(key, query[key])
	}
	return builder.Build()
}

func (r *Resolver) group(path string) (*urlkit.Group, error) {
	parts := strings.Split(strings.TrimSpace(path), ".")
	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("routes: group path is empty")
	}
	current, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("routes: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("routes: route %q not found: %v", route, rec)
		}
	}()
	return group.Builder(route), nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("routes: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	if group == nil {
		return nil, fmt.Errorf("routes: route group %q not found", name)
	}
	return group, nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("routes: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	if group == nil {
		return nil, fmt.Errorf("routes: child group %q not found", name)
	}
	return group, nil
}
