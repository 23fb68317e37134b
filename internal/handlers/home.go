package handlers

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/sync/errgroup"

	"localsite.dev/site-web/internal/cms"
	"localsite.dev/site-web/internal/content"
	"localsite.dev/site-web/internal/markdown"
	"localsite.dev/site-web/internal/nav"
	"localsite.dev/site-web/internal/seo"
)

const (
	unconfiguredName = "My Website"
	cityLimit        = 6
	serviceLinkLimit = 6
	defaultCtaText   = "Call Now"
	defaultCtaHref   = "/contact"
	defaultTagline   = "Professional services you can trust."
	defaultAreas     = "Service Areas"
)

// Source is the CMS surface the home page reads from. *cms.Client
// satisfies it.
type Source interface {
	Project(ctx context.Context) any
	Design(ctx context.Context) any
	HomeContent(ctx context.Context) any
	Cities(ctx context.Context, limit int) []any
	Content(ctx context.Context, filters cms.Filters) []any
}

// Home assembles the home page view model from CMS data.
type Home struct {
	src     Source
	norm    *content.Normalizer
	siteURL string
	now     func() time.Time
}

// NewHome returns a builder reading from src. A nil normalizer uses a
// silent one.
func NewHome(src Source, norm *content.Normalizer, siteURL string) *Home {
	if norm == nil {
		norm = content.New(nil)
	}
	return &Home{src: src, norm: norm, siteURL: siteURL, now: time.Now}
}

// ButtonView is a CTA button with its resolved href.
type ButtonView struct {
	Text   string `json:"text"`
	Href   string `json:"href"`
	NewTab bool   `json:"newTab,omitempty"`
}

// HeaderView is the resolved site header.
type HeaderView struct {
	SiteName    string               `json:"siteName"`
	LogoURL     string               `json:"logoUrl,omitempty"`
	Nav         []nav.RenderedItem   `json:"nav"`
	PhoneNumber string               `json:"phoneNumber,omitempty"`
	ShowCta     bool                 `json:"showCta"`
	CtaText     string               `json:"ctaText"`
	CtaHref     string               `json:"ctaHref"`
	Sticky      bool                 `json:"sticky"`
	Config      content.HeaderConfig `json:"config"`
}

// FooterView is the resolved site footer.
type FooterView struct {
	SiteName       string               `json:"siteName"`
	LogoURL        string               `json:"logoUrl,omitempty"`
	Tagline        string               `json:"tagline"`
	QuickLinks     []nav.RenderedItem   `json:"quickLinks"`
	ServiceLinks   []content.NavItem    `json:"serviceLinks,omitempty"`
	SocialLinks    []content.SocialLink `json:"socialLinks,omitempty"`
	PhoneNumber    string               `json:"phoneNumber,omitempty"`
	PhoneHref      string               `json:"phoneHref,omitempty"`
	Email          string               `json:"email,omitempty"`
	Address        string               `json:"address,omitempty"`
	Copyright      string               `json:"copyright"`
	ShowNewsletter bool                 `json:"showNewsletter"`
}

// HeroView is the hero section with fallbacks applied.
type HeroView struct {
	Headline        string      `json:"headline"`
	Subheadline     string      `json:"subheadline,omitempty"`
	BackgroundImage string      `json:"backgroundImage,omitempty"`
	Primary         *ButtonView `json:"primaryButton,omitempty"`
	Secondary       *ButtonView `json:"secondaryButton,omitempty"`
	PhoneNumber     string      `json:"phoneNumber,omitempty"`
}

// AboutView carries the about section with its markdown rendered.
type AboutView struct {
	*content.AboutSection
	HTML template.HTML `json:"html,omitempty"`
}

// AreasView is the service-areas section with the loaded cities.
type AreasView struct {
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Description string         `json:"description,omitempty"`
	Cities      []content.City `json:"cities"`
}

// CtaView is the CTA section with its global button.
type CtaView struct {
	Section     *content.RawSection `json:"section"`
	Button      *ButtonView         `json:"button,omitempty"`
	PhoneNumber string              `json:"phoneNumber,omitempty"`
}

// SectionView is one rendered homepage section.
type SectionView struct {
	Key  string `json:"key"`
	Data any    `json:"data"`
}

// HomeData is the view model for the home page.
type HomeData struct {
	// Configured is false while the CMS has no real project behind it.
	Configured  bool              `json:"configured"`
	Path        string            `json:"path"`
	SEO         seo.Meta          `json:"seo"`
	Project     content.Project   `json:"project"`
	Header      HeaderView        `json:"header"`
	Footer      FooterView        `json:"footer"`
	GlobalCta   content.GlobalCta `json:"globalCta"`
	PhoneNumber string            `json:"phoneNumber,omitempty"`
	Sections    []SectionView     `json:"sections"`
}

// Build fetches project, home page, design and services concurrently, then
// cities when the areas section is on. Only context cancellation fails it;
// CMS errors are absorbed by the source.
func (h *Home) Build(ctx context.Context, path string) (HomeData, error) {
	var (
		rawProject, rawHome, rawDesign any
		rawServices, rawCities         []any
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rawProject = h.src.Project(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		rawHome = h.src.HomeContent(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		rawDesign = h.src.Design(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		rawServices = h.src.Content(gctx, cms.Filters{Type: "service", Limit: serviceLinkLimit})
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return HomeData{}, fmt.Errorf("load home: %w", err)
	}

	project := h.norm.Project(rawProject)
	page, _ := h.norm.Page(rawHome)
	sections := page.Sections

	if sections.Enabled(content.SectionAreas) {
		rawCities = h.src.Cities(ctx, cityLimit)
		if err := ctx.Err(); err != nil {
			return HomeData{}, fmt.Errorf("load cities: %w", err)
		}
	}

	data := HomeData{
		Path:    path,
		Project: project,
	}
	data.Configured = project.Name != "" && project.Name != unconfiguredName

	hero := h.hero(project, page)
	data.SEO = seo.ForProject(project, page, hero.BackgroundImage, h.siteURL)
	if ld := seo.LocalBusiness(project, h.siteURL); ld != nil {
		data.SEO.JSONLD = append(data.SEO.JSONLD, seo.JSON(ld))
	}
	if h.siteURL != "" {
		data.SEO.JSONLD = append(data.SEO.JSONLD, seo.JSON(seo.WebSite(data.SEO.OG.Title, h.siteURL)))
	}
	data.Header = h.header(project, path)
	if !data.Configured {
		data.Footer = h.footer(project, nil, path)
		data.Sections = []SectionView{}
		return data, nil
	}

	data.GlobalCta = h.norm.GlobalCta(rawDesign, project.NapPhone)
	data.PhoneNumber = data.GlobalCta.PhoneNumber
	if data.PhoneNumber == "" {
		data.PhoneNumber = project.NapPhone
	}
	data.Footer = h.footer(project, h.norm.ServiceLinks(rawServices, serviceLinkLimit), path)
	data.Sections = h.sections(project, page, data.GlobalCta, data.PhoneNumber, h.norm.Cities(rawCities))
	return data, nil
}

func (h *Home) sections(p content.Project, page content.Page, cta content.GlobalCta, phone string, cities []content.City) []SectionView {
	ordered := page.Sections.Ordered()
	if len(ordered) == 0 {
		// Hero texts come from the page only; the section may be disabled.
		hero := h.hero(p, page)
		hero.Headline = firstNonEmpty(page.H1, p.Name, "Welcome")
		hero.Subheadline = firstNonEmpty(page.Excerpt, "Welcome to "+p.Name)
		hero.PhoneNumber = phone
		hero.Primary = buttonView(cta.HeroPrimary, phone)
		hero.Secondary = buttonView(cta.HeroSecondary, phone)
		return []SectionView{{Key: content.SectionHero, Data: hero}}
	}

	out := make([]SectionView, 0, len(ordered))
	for _, entry := range ordered {
		var data any
		switch entry.Key {
		case content.SectionHero:
			hero := h.hero(p, page)
			hero.PhoneNumber = phone
			hero.Primary = buttonView(cta.HeroPrimary, phone)
			hero.Secondary = buttonView(cta.HeroSecondary, phone)
			data = hero
		case content.SectionAbout:
			about := page.Sections.About
			data = AboutView{AboutSection: about, HTML: markdown.Render(about.ContentMD)}
		case content.SectionAreas:
			areas, ok := areasView(page.Sections.Areas, cities)
			if !ok {
				continue
			}
			data = areas
		case content.SectionCTA:
			data = CtaView{
				Section:     page.Sections.CTA,
				Button:      buttonView(cta.CtaSection, phone),
				PhoneNumber: phone,
			}
		default:
			data = entry.Section
		}
		out = append(out, SectionView{Key: entry.Key, Data: data})
	}
	return out
}

// hero applies the headline and background fallbacks. The background
// chain is hero.backgroundImage, hero.image, then the page's featured image.
func (h *Home) hero(p content.Project, page content.Page) HeroView {
	var s content.HeroSection
	if page.Sections.Hero != nil {
		s = *page.Sections.Hero
	}
	return HeroView{
		Headline:        firstNonEmpty(s.Headline, page.H1, p.Name, "Welcome"),
		Subheadline:     firstNonEmpty(s.Subheadline, page.Excerpt),
		BackgroundImage: firstNonEmpty(s.BackgroundImage, s.Image, page.FeaturedImageURL),
	}
}

func (h *Home) header(p content.Project, path string) HeaderView {
	cfg := p.HeaderConfig
	items := cfg.NavItems
	if len(items) == 0 {
		items = p.FooterConfig.NavLinks()
	}
	phone := firstNonEmpty(cfg.PhoneNumber, p.NapPhone)
	ctaHref := firstNonEmpty(cfg.CtaLink, defaultCtaHref)
	logo, _ := cfg.Extra["logoUrl"].(string)
	if t, _ := cfg.Extra["ctaType"].(string); t == "phone" && phone != "" {
		ctaHref = content.TelHref(phone)
	}
	return HeaderView{
		SiteName:    firstNonEmpty(p.Name, unconfiguredName),
		LogoURL:     firstNonEmpty(logo, p.LogoURL),
		Nav:         nav.Build(path, items, nav.DefaultHeader),
		PhoneNumber: phone,
		ShowCta:     cfg.ShowCta == nil || *cfg.ShowCta,
		CtaText:     firstNonEmpty(cfg.CtaText, defaultCtaText),
		CtaHref:     ctaHref,
		Sticky:      cfg.Sticky == nil || *cfg.Sticky,
		Config:      cfg,
	}
}

func (h *Home) footer(p content.Project, services []content.NavItem, path string) FooterView {
	cfg := p.FooterConfig
	if len(cfg.ServiceLinks) > 0 {
		services = cfg.ServiceLinks
	}
	tagline, _ := cfg.Extra["tagline"].(string)
	copyright := cfg.CopyrightText
	if copyright == "" {
		copyright = fmt.Sprintf("© %d %s. All rights reserved.", h.now().Year(), firstNonEmpty(p.Name, unconfiguredName))
	}
	f := FooterView{
		SiteName:       firstNonEmpty(p.Name, unconfiguredName),
		LogoURL:        p.LogoURL,
		Tagline:        firstNonEmpty(tagline, defaultTagline),
		QuickLinks:     nav.Build(path, cfg.NavLinks(), nav.DefaultFooter),
		ServiceLinks:   services,
		SocialLinks:    cfg.SocialLinks,
		PhoneNumber:    p.NapPhone,
		Email:          firstNonEmpty(cfg.Email, p.NapEmail),
		Address:        seo.Address(p),
		Copyright:      copyright,
		ShowNewsletter: cfg.ShowNewsletter != nil && *cfg.ShowNewsletter,
	}
	if f.PhoneNumber != "" {
		f.PhoneHref = content.TelHref(f.PhoneNumber)
	}
	return f
}

// areasView reports false when there is nothing to show: no cities and no
// description.
func areasView(s *content.RawSection, cities []content.City) (AreasView, bool) {
	v := AreasView{Title: defaultAreas, Cities: cities}
	if s != nil {
		if t, _ := s.Fields["title"].(string); t != "" {
			v.Title = t
		}
		v.Subtitle, _ = s.Fields["subtitle"].(string)
		v.Description, _ = s.Fields["description"].(string)
	}
	if v.Cities == nil {
		v.Cities = []content.City{}
	}
	return v, len(cities) > 0 || v.Description != ""
}

func buttonView(b *content.CtaButtonConfig, phone string) *ButtonView {
	if b == nil {
		return nil
	}
	return &ButtonView{
		Text:   b.Text,
		Href:   content.ButtonHref(b, phone),
		NewTab: b.NewTab != nil && *b.NewTab,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
