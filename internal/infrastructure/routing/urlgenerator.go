// Package routing generates absolute URLs for the named HTTP routes.
package routing

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const (
	RoutePoolManage = "pool_manage"
	RoutePoolReuse  = "pool_reuse"
)

// DefaultRoutes maps route names to gin-style path patterns.
var DefaultRoutes = map[string]string{
	RoutePoolManage: "/manage/:listUrl",
	RoutePoolReuse:  "/reuse/:listUrl",
}

type URLGenerator struct {
	baseURL *url.URL
	routes  map[string]string
}

func NewURLGenerator(baseURL string, routes map[string]string) (*URLGenerator, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	return &URLGenerator{baseURL: u, routes: routes}, nil
}

// GenerateAbsoluteURL fills the route's path parameters from params. Any
// parameter the pattern does not use is appended as a query string.
func (g *URLGenerator) GenerateAbsoluteURL(route string, params map[string]string) (string, error) {
	pattern, ok := g.routes[route]
	if !ok {
		return "", fmt.Errorf("unknown route %q", route)
	}

	used := make(map[string]bool, len(params))
	segments := strings.Split(pattern, "/")
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = segment
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		name := segment[1:]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("missing parameter %q for route %q", name, route)
		}
		segments[i] = value
		escaped[i] = url.PathEscape(value)
		used[name] = true
	}

	u := *g.baseURL
	u.Path = g.baseURL.Path + strings.Join(segments, "/")
	u.RawPath = g.baseURL.EscapedPath() + strings.Join(escaped, "/")

	query := url.Values{}
	keys := make([]string, 0, len(params))
	for k := range params {
		if !used[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		query.Set(k, params[k])
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}
