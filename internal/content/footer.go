package content

// QuickLink is a footer quick-links module entry.
type QuickLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NavItem is a label and destination pair used by header and footer link lists.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// SocialLink points at a social profile.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// QuickLinksModule groups the footer quick links.
type QuickLinksModule struct {
	Links []QuickLink `json:"links"`
}

// FooterConfig configures the site footer. Keys the normalizer does not know
// are kept in Extra and written back out when the config is encoded.
type FooterConfig struct {
	Email            string            `json:"email,omitempty"`
	QuickLinksModule *QuickLinksModule `json:"quickLinksModule,omitempty"`
	QuickLinks       []NavItem         `json:"quickLinks,omitempty"`
	ServiceLinks     []NavItem         `json:"serviceLinks,omitempty"`
	SocialLinks      []SocialLink      `json:"socialLinks,omitempty"`
	CopyrightText    string            `json:"copyrightText,omitempty"`
	ShowNewsletter   *bool             `json:"showNewsletter,omitempty"`
	Columns          *int              `json:"columns,omitempty"`

	Extra map[string]any `json:"-"`
}

var footerKeys = keySet("email", "quickLinksModule", "quickLinks", "serviceLinks", "socialLinks", "copyrightText", "showNewsletter", "columns")

// MarshalJSON encodes the known fields followed by Extra.
func (c FooterConfig) MarshalJSON() ([]byte, error) {
	type plain FooterConfig
	return marshalOpen(plain(c), c.Extra)
}

// NavLinks returns the footer links as nav items, preferring the quick-links
// module over the flat quickLinks list.
func (c FooterConfig) NavLinks() []NavItem {
	if c.QuickLinksModule != nil {
		out := make([]NavItem, 0, len(c.QuickLinksModule.Links))
		for _, l := range c.QuickLinksModule.Links {
			out = append(out, NavItem{Label: l.Label, Href: l.URL})
		}
		return out
	}
	return c.QuickLinks
}

// FooterConfig normalizes a footer configuration. Non-object input yields an
// empty config.
func (n *Normalizer) FooterConfig(input any) FooterConfig {
	in, ok := object(input)
	if !ok {
		if input != nil {
			n.warn("invalid footer config", input)
		}
		return FooterConfig{}
	}

	out := FooterConfig{
		Email:          stringField(in, "email"),
		CopyrightText:  stringField(in, "copyrightText"),
		ShowNewsletter: boolField(in, "showNewsletter"),
		Extra:          extras(in, footerKeys),
	}
	if f, ok := number(in["columns"]); ok && f == float64(int(f)) {
		cols := int(f)
		out.Columns = &cols
	}
	if mod, ok := object(in["quickLinksModule"]); ok {
		out.QuickLinksModule = &QuickLinksModule{Links: quickLinks(mod["links"])}
	}
	if _, ok := list(in["quickLinks"]); ok {
		out.QuickLinks = navItems(in["quickLinks"], "href", "url")
	}
	if _, ok := list(in["serviceLinks"]); ok {
		out.ServiceLinks = navItems(in["serviceLinks"], "href")
	}
	if items, ok := list(in["socialLinks"]); ok {
		out.SocialLinks = make([]SocialLink, 0, len(items))
		for _, item := range items {
			m, ok := object(item)
			if !ok {
				continue
			}
			link := SocialLink{Platform: stringField(m, "platform"), URL: stringField(m, "url")}
			if link.Platform == "" || link.URL == "" {
				continue
			}
			out.SocialLinks = append(out.SocialLinks, link)
		}
	}
	return out
}

func quickLinks(v any) []QuickLink {
	items, ok := list(v)
	if !ok {
		return []QuickLink{}
	}
	out := make([]QuickLink, 0, len(items))
	for _, item := range items {
		m, ok := object(item)
		if !ok {
			continue
		}
		link := QuickLink{Label: stringField(m, "label"), URL: firstString(m, "/", "url", "href")}
		if link.Label == "" {
			continue
		}
		out = append(out, link)
	}
	return out
}

// navItems keeps labelled objects, resolving the destination from the first
// string among hrefKeys and defaulting to "/".
func navItems(v any, hrefKeys ...string) []NavItem {
	items, _ := list(v)
	out := make([]NavItem, 0, len(items))
	for _, item := range items {
		m, ok := object(item)
		if !ok {
			continue
		}
		nav := NavItem{Label: stringField(m, "label"), Href: firstString(m, "/", hrefKeys...)}
		if nav.Label == "" {
			continue
		}
		out = append(out, nav)
	}
	return out
}
