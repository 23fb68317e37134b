package nav

import (
	"strings"

	"localsite.dev/site-web/internal/content"
)

// RenderedItem is a navigation link with its active state.
type RenderedItem struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// DefaultHeader is used when the CMS configures no header links.
var DefaultHeader = []content.NavItem{
	{Label: "Home", Href: "/"},
	{Label: "Services", Href: "/services"},
	{Label: "About", Href: "/about"},
	{Label: "Locations", Href: "/locations"},
	{Label: "Contact", Href: "/contact"},
}

// DefaultFooter is used when the CMS configures no footer quick links.
var DefaultFooter = []content.NavItem{
	{Label: "About Us", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
	{Label: "Reviews", Href: "/reviews"},
	{Label: "Service Areas", Href: "/locations"},
}

// Build renders items with active state given the current path. An empty
// items list falls back to defaults.
func Build(currentPath string, items, defaults []content.NavItem) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	if len(items) == 0 {
		items = defaults
	}
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		out = append(out, RenderedItem{
			Label:  it.Label,
			Href:   it.Href,
			Active: isActive(it.Href, currentPath),
		})
	}
	return out
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/services" or "/services/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}
