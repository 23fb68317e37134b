package content

import "sort"

// Section keys, in the order the normalizer emits them.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionStats        = "stats"
	SectionServices     = "services"
	SectionProcess      = "process"
	SectionFAQ          = "faq"
	SectionTestimonials = "testimonials"
	SectionCTA          = "cta"
	SectionTrustBadges  = "trustBadges"
	SectionAreas        = "areas"
	SectionPricing      = "pricing"
)

// Default _order values. Sections without an explicit order sort after hero
// and about.
const (
	defaultHeroOrder  = 0
	defaultAboutOrder = 1
	defaultOrder      = 999
)

// passThroughSections are copied shallowly; only _enabled and _order are
// coerced. Rendering code guards their inner fields.
var passThroughSections = []string{
	SectionStats, SectionServices, SectionProcess, SectionFAQ, SectionTestimonials,
	SectionCTA, SectionTrustBadges, SectionAreas, SectionPricing,
}

// SectionBase holds the enable/order switches shared by all sections.
type SectionBase struct {
	Enabled bool    `json:"_enabled"`
	Order   float64 `json:"_order"`
}

// HeroSection is the fully validated hero block.
type HeroSection struct {
	SectionBase
	Headline        string `json:"headline,omitempty"`
	Subheadline     string `json:"subheadline,omitempty"`
	CtaPrimary      string `json:"ctaPrimary,omitempty"`
	CtaSecondary    string `json:"ctaSecondary,omitempty"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	Image           string `json:"image,omitempty"`
}

// AboutSection is the fully validated about block.
type AboutSection struct {
	SectionBase
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	ContentMD string `json:"content_md,omitempty"`
}

// RawSection is a section passed through from the CMS. Fields holds every key
// other than _enabled and _order.
type RawSection struct {
	SectionBase
	Fields map[string]any `json:"-"`
}

// MarshalJSON flattens Fields next to _enabled and _order.
func (s RawSection) MarshalJSON() ([]byte, error) {
	return marshalOpen(s.SectionBase, s.Fields)
}

// SectionsContent is the set of homepage sections. A nil section is not rendered.
type SectionsContent struct {
	Hero         *HeroSection  `json:"hero,omitempty"`
	About        *AboutSection `json:"about,omitempty"`
	Stats        *RawSection   `json:"stats,omitempty"`
	Services     *RawSection   `json:"services,omitempty"`
	Process      *RawSection   `json:"process,omitempty"`
	FAQ          *RawSection   `json:"faq,omitempty"`
	Testimonials *RawSection   `json:"testimonials,omitempty"`
	CTA          *RawSection   `json:"cta,omitempty"`
	TrustBadges  *RawSection   `json:"trustBadges,omitempty"`
	Areas        *RawSection   `json:"areas,omitempty"`
	Pricing      *RawSection   `json:"pricing,omitempty"`
}

// SectionEntry is one present section with its key. Section is a
// *HeroSection, *AboutSection or *RawSection.
type SectionEntry struct {
	Key     string  `json:"key"`
	Enabled bool    `json:"-"`
	Order   float64 `json:"-"`
	Section any     `json:"data"`
}

func (c *SectionsContent) raw(key string) **RawSection {
	switch key {
	case SectionStats:
		return &c.Stats
	case SectionServices:
		return &c.Services
	case SectionProcess:
		return &c.Process
	case SectionFAQ:
		return &c.FAQ
	case SectionTestimonials:
		return &c.Testimonials
	case SectionCTA:
		return &c.CTA
	case SectionTrustBadges:
		return &c.TrustBadges
	case SectionAreas:
		return &c.Areas
	case SectionPricing:
		return &c.Pricing
	}
	return nil
}

// Entries lists the present sections in emission order.
func (c SectionsContent) Entries() []SectionEntry {
	var out []SectionEntry
	if c.Hero != nil {
		out = append(out, SectionEntry{Key: SectionHero, Enabled: c.Hero.Enabled, Order: c.Hero.Order, Section: c.Hero})
	}
	if c.About != nil {
		out = append(out, SectionEntry{Key: SectionAbout, Enabled: c.About.Enabled, Order: c.About.Order, Section: c.About})
	}
	for _, key := range passThroughSections {
		s := *c.raw(key)
		if s == nil {
			continue
		}
		out = append(out, SectionEntry{Key: key, Enabled: s.Enabled, Order: s.Order, Section: s})
	}
	return out
}

// Ordered returns the enabled sections sorted by _order. Equal orders keep
// emission order.
func (c SectionsContent) Ordered() []SectionEntry {
	entries := c.Entries()
	out := entries[:0]
	for _, e := range entries {
		if e.Enabled {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Enabled reports whether the section under key is present and switched on.
func (c SectionsContent) Enabled(key string) bool {
	for _, e := range c.Entries() {
		if e.Key == key {
			return e.Enabled
		}
	}
	return false
}

// SectionsContent normalizes the homepage sections document.
func (n *Normalizer) SectionsContent(input any) SectionsContent {
	in, ok := object(input)
	if !ok {
		if input != nil {
			n.warn("invalid sections content", input)
		}
		return SectionsContent{}
	}

	var out SectionsContent
	if hero, ok := object(in[SectionHero]); ok {
		out.Hero = &HeroSection{
			SectionBase:     sectionBase(hero, defaultHeroOrder),
			Headline:        stringField(hero, "headline"),
			Subheadline:     stringField(hero, "subheadline"),
			CtaPrimary:      stringField(hero, "ctaPrimary"),
			CtaSecondary:    stringField(hero, "ctaSecondary"),
			BackgroundImage: stringField(hero, "backgroundImage"),
			Image:           stringField(hero, "image"),
		}
	}
	if about, ok := object(in[SectionAbout]); ok {
		out.About = &AboutSection{
			SectionBase: sectionBase(about, defaultAboutOrder),
			Title:       stringField(about, "title"),
			Subtitle:    stringField(about, "subtitle"),
			ContentMD:   stringField(about, "content_md"),
		}
	}
	baseKeys := keySet("_enabled", "_order")
	for _, key := range passThroughSections {
		sec, ok := object(in[key])
		if !ok {
			continue
		}
		*out.raw(key) = &RawSection{
			SectionBase: sectionBase(sec, defaultOrder),
			Fields:      extras(sec, baseKeys),
		}
	}
	return out
}

func sectionBase(in map[string]any, order float64) SectionBase {
	base := SectionBase{Enabled: true, Order: order}
	if b, ok := boolean(in["_enabled"]); ok {
		base.Enabled = b
	}
	if f, ok := number(in["_order"]); ok {
		base.Order = f
	}
	return base
}
