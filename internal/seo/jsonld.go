package seo

import (
	"encoding/json"
	"strings"

	"localsite.dev/site-web/internal/content"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// LocalBusiness returns a schema.org LocalBusiness built from the project's
// NAP fields. Empty fields are omitted; it returns nil when the project has
// no name at all.
func LocalBusiness(p content.Project, url string) map[string]any {
	name := p.NapName
	if name == "" {
		name = p.Name
	}
	if name == "" {
		return nil
	}
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "LocalBusiness",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if p.LogoURL != "" {
		m["image"] = p.LogoURL
	}
	if p.NapPhone != "" {
		m["telephone"] = p.NapPhone
	}
	if p.NapEmail != "" {
		m["email"] = p.NapEmail
	}
	addr := map[string]any{}
	if p.NapAddress != "" {
		addr["streetAddress"] = p.NapAddress
	}
	if p.NapCity != "" {
		addr["addressLocality"] = p.NapCity
	}
	if p.NapState != "" {
		addr["addressRegion"] = p.NapState
	}
	if p.NapZip != "" {
		addr["postalCode"] = p.NapZip
	}
	if len(addr) > 0 {
		addr["@type"] = "PostalAddress"
		m["address"] = addr
	}
	if p.PrimaryCategory != "" {
		m["description"] = p.PrimaryCategory
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// Address joins the street, city, state and zip into one display line,
// e.g. "1 Main St, Austin, TX, 78701".
func Address(p content.Project) string {
	var parts []string
	for _, v := range []string{p.NapAddress, p.NapCity, p.NapState, p.NapZip} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}
