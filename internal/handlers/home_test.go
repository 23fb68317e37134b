package handlers

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localsite.dev/site-web/internal/cms"
	"localsite.dev/site-web/internal/content"
)

type fakeSource struct {
	mu      sync.Mutex
	project any
	home    any
	design  any
	cities  []any
	service []any

	cityCalls int
	filters   []cms.Filters
}

func (f *fakeSource) Project(context.Context) any     { return f.project }
func (f *fakeSource) Design(context.Context) any      { return f.design }
func (f *fakeSource) HomeContent(context.Context) any { return f.home }

func (f *fakeSource) Cities(_ context.Context, limit int) []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cityCalls++
	if limit < len(f.cities) {
		return f.cities[:limit]
	}
	return f.cities
}

func (f *fakeSource) Content(_ context.Context, filters cms.Filters) []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filters)
	return f.service
}

func newTestHome(src Source) *Home {
	h := NewHome(src, nil, "https://acme.test")
	h.now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }
	return h
}

func acmeProject() map[string]any {
	return map[string]any{
		"name":             "Acme Plumbing",
		"nap_phone":        "(650) 253-0000",
		"nap_email":        "hi@acme.test",
		"nap_city":         "Austin",
		"nap_state":        "TX",
		"primary_category": "Plumber",
	}
}

func TestBuildNotConfigured(t *testing.T) {
	src := &fakeSource{project: map[string]any{"name": "My Website"}}
	data, err := newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)
	assert.False(t, data.Configured)
	assert.Empty(t, data.Sections)
	assert.Equal(t, "My Website", data.SEO.Title)

	data, err = newTestHome(&fakeSource{}).Build(context.Background(), "/")
	require.NoError(t, err)
	assert.False(t, data.Configured)
}

func TestBuildFallbackHero(t *testing.T) {
	src := &fakeSource{
		project: acmeProject(),
		home:    map[string]any{"slug": "home", "featured_image_url": "/feat.jpg"},
		design: map[string]any{"template": map[string]any{"globalCta": map[string]any{
			"heroPrimary": map[string]any{"text": "Call", "linkType": "phone"},
		}}},
	}
	data, err := newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)
	require.True(t, data.Configured)
	require.Len(t, data.Sections, 1)

	hero := data.Sections[0].Data.(HeroView)
	assert.Equal(t, "Acme Plumbing", hero.Headline)
	assert.Equal(t, "Welcome to Acme Plumbing", hero.Subheadline)
	assert.Equal(t, "/feat.jpg", hero.BackgroundImage)
	require.NotNil(t, hero.Primary)
	assert.Equal(t, "tel:+16502530000", hero.Primary.Href)
	assert.Nil(t, hero.Secondary)
	assert.Equal(t, "(650) 253-0000", data.PhoneNumber)
	assert.Equal(t, 0, src.cityCalls)
}

func TestBuildOrderedSections(t *testing.T) {
	src := &fakeSource{
		project: acmeProject(),
		home: map[string]any{
			"h1": "Fast plumbing",
			"sections_content": map[string]any{
				"hero":  map[string]any{"image": "/hero.jpg"},
				"about": map[string]any{"title": "About", "content_md": "We **fix** pipes.", "_order": 5.0},
				"faq":   map[string]any{"items": []any{}, "_order": 2.0},
				"cta":   map[string]any{"headline": "Ready?", "_order": 3.0},
				"stats": map[string]any{"_enabled": false},
				"areas": map[string]any{"_order": 4.0},
			},
		},
		design: map[string]any{"globalCta": map[string]any{
			"ctaSection": map[string]any{"pageSlug": "contact"},
		}},
		cities: []any{
			map[string]any{"slug": "austin", "title": "Austin"},
			map[string]any{"slug": "round-rock"},
		},
	}
	data, err := newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)

	var keys []string
	for _, s := range data.Sections {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"hero", "faq", "cta", "areas", "about"}, keys)
	assert.Equal(t, 1, src.cityCalls)

	hero := data.Sections[0].Data.(HeroView)
	assert.Equal(t, "Fast plumbing", hero.Headline)
	assert.Equal(t, "/hero.jpg", hero.BackgroundImage)

	cta := data.Sections[2].Data.(CtaView)
	require.NotNil(t, cta.Button)
	assert.Equal(t, "Get Quote", cta.Button.Text)
	assert.Equal(t, "/contact", cta.Button.Href)
	assert.Equal(t, "Ready?", cta.Section.Fields["headline"])

	areas := data.Sections[3].Data.(AreasView)
	assert.Equal(t, "Service Areas", areas.Title)
	assert.Len(t, areas.Cities, 2)
	assert.Equal(t, "round-rock", areas.Cities[1].Title)

	about := data.Sections[4].Data.(AboutView)
	assert.Contains(t, string(about.HTML), "<strong>fix</strong>")

	_, err = json.Marshal(data)
	require.NoError(t, err)
}

func TestBuildSkipsEmptyAreas(t *testing.T) {
	src := &fakeSource{
		project: acmeProject(),
		home: map[string]any{"sections_content": map[string]any{
			"hero":  map[string]any{"headline": "Hi"},
			"areas": map[string]any{},
		}},
	}
	data, err := newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)
	require.Len(t, data.Sections, 1)
	assert.Equal(t, "hero", data.Sections[0].Key)
	assert.Equal(t, 1, src.cityCalls)
}

func TestBuildHeaderAndFooter(t *testing.T) {
	project := acmeProject()
	project["header_config"] = map[string]any{"ctaType": "phone", "showCta": false}
	project["footer_config"] = map[string]any{
		"quickLinks": []any{map[string]any{"label": "Blog", "href": "/blog"}},
		"tagline":    "Pipes fixed right.",
	}
	src := &fakeSource{
		project: project,
		service: []any{map[string]any{"slug": "drains", "title": "Drains"}},
	}
	data, err := newTestHome(src).Build(context.Background(), "/blog")
	require.NoError(t, err)

	h := data.Header
	assert.False(t, h.ShowCta)
	assert.Equal(t, "Call Now", h.CtaText)
	assert.Equal(t, "tel:+16502530000", h.CtaHref)
	require.Len(t, h.Nav, 1)
	assert.True(t, h.Nav[0].Active)

	f := data.Footer
	assert.Equal(t, "Pipes fixed right.", f.Tagline)
	assert.Equal(t, "© 2025 Acme Plumbing. All rights reserved.", f.Copyright)
	assert.Equal(t, "Austin, TX", f.Address)
	assert.Equal(t, "hi@acme.test", f.Email)
	assert.Equal(t, []content.NavItem{{Label: "Drains", Href: "/services/drains"}}, f.ServiceLinks)
	require.Len(t, f.QuickLinks, 1)
	assert.Equal(t, "/blog", f.QuickLinks[0].Href)

	require.Len(t, src.filters, 1)
	assert.Equal(t, cms.Filters{Type: "service", Limit: 6}, src.filters[0])

	assert.Equal(t, "Acme Plumbing - Plumber", data.SEO.Description)
	require.Len(t, data.SEO.JSONLD, 2)
	assert.Contains(t, data.SEO.JSONLD[0], `"LocalBusiness"`)
	assert.Contains(t, data.SEO.JSONLD[1], `"url":"https://acme.test"`)
}

func TestBuildDefaultsNav(t *testing.T) {
	src := &fakeSource{project: acmeProject()}
	data, err := newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)
	assert.Len(t, data.Header.Nav, 5)
	assert.Len(t, data.Footer.QuickLinks, 4)
	assert.Equal(t, "/contact", data.Header.CtaHref)
	assert.True(t, data.Header.ShowCta)
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestHome(&fakeSource{project: acmeProject()}).Build(ctx, "/")
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildFallbackHeroIgnoresDisabledHeroText(t *testing.T) {
	src := &fakeSource{
		project: acmeProject(),
		home: map[string]any{
			"h1": "Page H1",
			"sections_content": map[string]any{
				"hero": map[string]any{
					"_enabled":        false,
					"headline":        "Disabled headline",
					"subheadline":     "Disabled subheadline",
					"backgroundImage": "/disabled-bg.jpg",
				},
			},
		},
	}
	data, err := newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)
	require.Len(t, data.Sections, 1)

	hero := data.Sections[0].Data.(HeroView)
	assert.Equal(t, "Page H1", hero.Headline)
	assert.Equal(t, "Welcome to Acme Plumbing", hero.Subheadline)
	assert.Equal(t, "/disabled-bg.jpg", hero.BackgroundImage)
}

func TestBuildFallbackHeroUsesExcerpt(t *testing.T) {
	src := &fakeSource{
		project: acmeProject(),
		home:    map[string]any{"excerpt": "Licensed and insured"},
	}
	data, err := newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)
	hero := data.Sections[0].Data.(HeroView)
	assert.Equal(t, "Acme Plumbing", hero.Headline)
	assert.Equal(t, "Licensed and insured", hero.Subheadline)
}

func TestBuildNotConfiguredKeepsLayout(t *testing.T) {
	data, err := newTestHome(&fakeSource{}).Build(context.Background(), "/")
	require.NoError(t, err)
	require.False(t, data.Configured)

	assert.Equal(t, "My Website", data.Header.SiteName)
	assert.Len(t, data.Header.Nav, 5)
	assert.True(t, data.Header.ShowCta)
	assert.Equal(t, "My Website", data.Footer.SiteName)
	assert.Len(t, data.Footer.QuickLinks, 4)
	assert.Equal(t, "© 2025 My Website. All rights reserved.", data.Footer.Copyright)
	assert.Empty(t, data.Sections)
}

func TestBuildHeaderLogoPrefersConfig(t *testing.T) {
	project := acmeProject()
	project["logo_url"] = "/project-logo.png"
	src := &fakeSource{project: project}

	data, err := newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, "/project-logo.png", data.Header.LogoURL)

	project["header_config"] = map[string]any{"logoUrl": "/header-logo.png"}
	data, err = newTestHome(src).Build(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, "/header-logo.png", data.Header.LogoURL)
	assert.Equal(t, "/project-logo.png", data.Footer.LogoURL)
}
