package content

import "strings"

// LinkType selects how a CTA button resolves its destination.
type LinkType string

const (
	LinkURL   LinkType = "url"
	LinkPhone LinkType = "phone"
	LinkForm  LinkType = "form"
	LinkPage  LinkType = "page"
	LinkEmail LinkType = "email"
)

// Valid reports whether t is one of the known link types.
func (t LinkType) Valid() bool {
	switch t {
	case LinkURL, LinkPhone, LinkForm, LinkPage, LinkEmail:
		return true
	}
	return false
}

// CtaButtonConfig is a clickable call-to-action.
type CtaButtonConfig struct {
	Text        string   `json:"text"`
	LinkType    LinkType `json:"linkType"`
	Href        string   `json:"href,omitempty"`
	CustomURL   string   `json:"customUrl,omitempty"`
	PageSlug    string   `json:"pageSlug,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Email       string   `json:"email,omitempty"`
	NewTab      *bool    `json:"newTab,omitempty"`
}

// Map returns the button in CMS document form.
func (c CtaButtonConfig) Map() map[string]any {
	m := map[string]any{
		"text":     c.Text,
		"linkType": string(c.LinkType),
	}
	set := func(k, v string) {
		if v != "" {
			m[k] = v
		}
	}
	set("href", c.Href)
	set("customUrl", c.CustomURL)
	set("pageSlug", c.PageSlug)
	set("phoneNumber", c.PhoneNumber)
	set("email", c.Email)
	if c.NewTab != nil {
		m["newTab"] = *c.NewTab
	}
	return m
}

// CtaButton normalizes a CTA button. It returns nil when input is absent,
// not an object, empty, or carries nothing that identifies a button.
func (n *Normalizer) CtaButton(input any, fallbackText, fallbackPhone string) *CtaButtonConfig {
	switch c := input.(type) {
	case nil:
		return nil
	case *CtaButtonConfig:
		if c == nil {
			return nil
		}
		input = c.Map()
	case CtaButtonConfig:
		input = c.Map()
	}
	in, ok := object(input)
	if !ok {
		n.warn("invalid CTA button config", input)
		return nil
	}
	// An empty object means the CMS has no button configured, even when the
	// caller supplies a fallback text.
	if len(in) == 0 {
		return nil
	}

	has := func(key string) bool {
		_, ok := str(in[key])
		return ok
	}
	text, _ := str(in["text"])
	text = strings.TrimSpace(text)
	hasText := text != ""
	explicit, _ := str(in["linkType"])
	hasLinkType := LinkType(explicit).Valid()
	hasDestination := has("customUrl") || has("pageSlug") || has("phoneNumber") || has("email")

	if !hasText && !hasLinkType && !hasDestination && fallbackText == "" {
		return nil
	}
	if !hasText {
		text = fallbackText
	}

	linkType := LinkURL
	switch {
	case hasLinkType:
		linkType = LinkType(explicit)
	case has("phoneNumber") || (fallbackPhone != "" && !truthy(in["customUrl"]) && !truthy(in["pageSlug"])):
		linkType = LinkPhone
	case has("email"):
		linkType = LinkEmail
	case has("pageSlug"):
		linkType = LinkPage
	}

	out := &CtaButtonConfig{
		Text:        text,
		LinkType:    linkType,
		Href:        stringField(in, "href"),
		CustomURL:   stringField(in, "customUrl"),
		PageSlug:    stringField(in, "pageSlug"),
		PhoneNumber: firstString(in, fallbackPhone, "phoneNumber"),
		Email:       stringField(in, "email"),
		NewTab:      boolField(in, "newTab"),
	}
	if linkType == LinkURL && out.Href == "" && out.CustomURL == "" && out.PageSlug == "" {
		out.Href = "/"
	}
	return out
}
