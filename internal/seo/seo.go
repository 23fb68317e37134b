package seo

import "localsite.dev/site-web/internal/content"

const (
	defaultTitle    = "My Website"
	defaultCategory = "Professional Services"
)

type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Type        string `json:"type"`
	SiteName    string `json:"siteName,omitempty"`
}

type Twitter struct {
	Card  string `json:"card"`
	Image string `json:"image,omitempty"`
}

type Meta struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Canonical   string    `json:"canonical,omitempty"`
	OG          OpenGraph `json:"og"`
	Twitter     Twitter   `json:"twitter"`
	JSONLD      []string  `json:"jsonLd,omitempty"`
}

// ForProject builds the site-wide metadata. Page-level meta_title and
// meta_description override the project defaults when set. siteURL, when
// non-empty, becomes the canonical URL.
func ForProject(p content.Project, page content.Page, image, siteURL string) Meta {
	name := p.Name
	if name == "" {
		name = defaultTitle
	}
	category := p.PrimaryCategory
	if category == "" {
		category = defaultCategory
	}
	m := Meta{
		Title:       name,
		Description: name + " - " + category,
		Canonical:   siteURL,
	}
	if page.MetaTitle != "" {
		m.Title = page.MetaTitle
	}
	if page.MetaDescription != "" {
		m.Description = page.MetaDescription
	}
	m.OG = OpenGraph{Title: m.Title, Description: m.Description, Image: image, Type: "website", SiteName: p.Name}
	m.Twitter = Twitter{Card: "summary", Image: image}
	if image != "" {
		m.Twitter.Card = "summary_large_image"
	}
	return m
}
