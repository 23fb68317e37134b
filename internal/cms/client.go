// Package cms reads project, design and page documents from the headless
// content API. Failures never reach callers: they are logged and the client
// answers with fallback documents instead.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a CMS resource cannot be located.
	ErrNotFound = errors.New("cms: not found")
	// ErrNotConfigured is returned when the project slug or API key is missing.
	ErrNotConfigured = errors.New("cms: not configured")
)

const defaultCityLimit = 6

// Options configures a Client.
type Options struct {
	APIURL      string
	ProjectSlug string
	APIKey      string
	Timeout     time.Duration
	Fallback    Fallback
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

// Filters narrows a content listing.
type Filters struct {
	Type    string
	Slug    string
	City    string
	Service string
	Limit   int
}

// Client provides read-only access to the content API.
type Client struct {
	base     string
	apiKey   string
	missing  []string
	http     *http.Client
	log      *zap.Logger
	fallback Fallback
	cache    *cache

	// configWarned makes the missing-configuration warning fire once per client.
	configWarned atomic.Bool
}

// NewClient constructs a Client. A client without a project slug or API key
// is valid: it serves fallback data only.
func NewClient(opts Options) *Client {
	c := &Client{
		base:     APIBase(opts.APIURL, opts.ProjectSlug),
		apiKey:   strings.TrimSpace(opts.APIKey),
		http:     opts.HTTPClient,
		log:      opts.Logger,
		fallback: opts.Fallback,
		cache:    newCache(),
	}
	if c.fallback.Project == nil {
		c.fallback.Project = defaultFallback().Project
	}
	if strings.TrimSpace(opts.ProjectSlug) == "" {
		c.missing = append(c.missing, "CONTENT_PROJECT_SLUG (or CMS_PROJECT_SLUG)")
	}
	if c.apiKey == "" {
		c.missing = append(c.missing, "CONTENT_API_KEY (or CMS_API_KEY)")
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		c.http = &http.Client{Timeout: timeout}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// APIBase joins the content API URL and project slug into
// "<api>/v1/<slug>", tolerating URLs that already end in "/v1" or in the slug.
func APIBase(apiURL, slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}
	base := strings.TrimRight(strings.TrimSpace(apiURL), "/")
	slugSuffix := regexp.MustCompile(`(?i)(/v1)?/` + regexp.QuoteMeta(slug) + `/?$`)
	if slugSuffix.MatchString(base) {
		base = slugSuffix.ReplaceAllString(base, "")
		return base + "/v1/" + slug
	}
	base = v1Suffix.ReplaceAllString(base, "")
	return base + "/v1/" + slug
}

var v1Suffix = regexp.MustCompile(`(?i)/v1/?$`)

// Configured reports whether the client can reach the content API.
func (c *Client) Configured() bool {
	return c != nil && len(c.missing) == 0 && c.base != ""
}

func (c *Client) warnConfig() {
	if c == nil || !c.configWarned.CompareAndSwap(false, true) {
		return
	}
	c.log.Warn("cms: missing config, using fallback data", zap.Strings("missing", c.missing))
}

func (c *Client) fetch(ctx context.Context, path string, ttl time.Duration, tags []string) (any, error) {
	if !c.Configured() {
		c.warnConfig()
		return nil, ErrNotConfigured
	}
	if doc, ok := c.cache.get(path); ok {
		return doc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("cms: build request %s: %w", path, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("cms: fetch %s: status %d", path, resp.StatusCode)
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cms: decode %s: %w", path, err)
	}
	c.cache.set(path, doc, ttl, tags)
	return cloneDoc(doc), nil
}

// logFetch records a failed fetch. A missing configuration was already
// reported by warnConfig.
func (c *Client) logFetch(path string, err error) {
	if errors.Is(err, ErrNotConfigured) {
		return
	}
	c.log.Error("cms: fetch failed", zap.String("path", path), zap.Error(err))
}

// Project returns the raw project document, or the fallback project.
func (c *Client) Project(ctx context.Context) any {
	doc, err := c.fetch(ctx, "/project", resourceTTL, []string{"project"})
	if err != nil || doc == nil {
		if err != nil {
			c.logFetch("/project", err)
		}
		return cloneDoc(c.fallback.Project)
	}
	return doc
}

// Design returns the active design template document, or nil.
func (c *Client) Design(ctx context.Context) any {
	doc, err := c.fetch(ctx, "/design", resourceTTL, []string{"design"})
	if err != nil {
		c.logFetch("/design", err)
		return cloneDoc(c.fallback.Design)
	}
	return doc
}

// Content lists content items matching filters. It never returns nil.
func (c *Client) Content(ctx context.Context, filters Filters) []any {
	params := url.Values{}
	if filters.Type != "" {
		params.Set("type", filters.Type)
	}
	if filters.Slug != "" {
		params.Set("slug", filters.Slug)
	}
	if filters.City != "" {
		params.Set("city", filters.City)
	}
	if filters.Service != "" {
		params.Set("service", filters.Service)
	}
	path := "/content"
	if q := params.Encode(); q != "" {
		path += "?" + q
	}

	doc, err := c.fetch(ctx, path, defaultTTL, contentTags(filters))
	if err != nil {
		c.logFetch(path, err)
		return c.fallback.content(filters)
	}
	items := listItems(doc)
	if filters.Limit > 0 && len(items) > filters.Limit {
		items = items[:filters.Limit]
	}
	return items
}

func contentTags(f Filters) []string {
	tags := []string{"content:list"}
	if f.Type != "" {
		tags = append(tags, "content:list:"+f.Type)
	}
	if f.Slug != "" {
		if f.Type != "" {
			tags = append(tags, "content:"+f.Type+":"+f.Slug)
		}
		tags = append(tags, "content:slug:"+f.Slug)
	}
	return tags
}

// ContentBySlug returns the first content item with slug, or nil.
func (c *Client) ContentBySlug(ctx context.Context, slug string) any {
	return first(c.Content(ctx, Filters{Slug: slug}))
}

// HomeContent returns the home page item. Older projects publish the home
// page without a slug, so the first page item is used when "home" is missing.
func (c *Client) HomeContent(ctx context.Context) any {
	if item := first(c.Content(ctx, Filters{Type: "page", Slug: "home"})); item != nil {
		return item
	}
	return first(c.Content(ctx, Filters{Type: "page"}))
}

// Cities returns up to limit city items for the areas section.
func (c *Client) Cities(ctx context.Context, limit int) []any {
	if limit <= 0 {
		limit = defaultCityLimit
	}
	return c.Content(ctx, Filters{Type: "city", Limit: limit})
}

// Testimonials returns the items of the testimonials endpoint.
func (c *Client) Testimonials(ctx context.Context) []any {
	return c.items(ctx, "/testimonials", "testimonials", c.fallback.Testimonials)
}

// Team returns the items of the team endpoint.
func (c *Client) Team(ctx context.Context) []any {
	return c.items(ctx, "/team", "team", c.fallback.Team)
}

func (c *Client) items(ctx context.Context, path, tag string, fallback []any) []any {
	doc, err := c.fetch(ctx, path, resourceTTL, []string{tag})
	if err != nil {
		c.logFetch(path, err)
		out, _ := cloneDoc(fallback).([]any)
		if out == nil {
			out = []any{}
		}
		return out
	}
	return listItems(doc)
}

// Revalidate drops cached documents carrying any of tags.
func (c *Client) Revalidate(tags ...string) int {
	if c == nil {
		return 0
	}
	n := c.cache.revalidate(tags...)
	c.log.Debug("cms: revalidated tags", zap.Strings("tags", tags), zap.Int("entries", n))
	return n
}

// Purge drops every cached document.
func (c *Client) Purge() int {
	if c == nil {
		return 0
	}
	return c.cache.purge()
}

func listItems(doc any) []any {
	m, ok := doc.(map[string]any)
	if !ok {
		return []any{}
	}
	items, ok := m["items"].([]any)
	if !ok {
		return []any{}
	}
	return items
}

func first(items []any) any {
	if len(items) == 0 {
		return nil
	}
	return items[0]
}
