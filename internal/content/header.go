package content

// LogoPosition places the header logo.
type LogoPosition string

const (
	LogoLeft   LogoPosition = "left"
	LogoCenter LogoPosition = "center"
)

// NavAlignment aligns the header navigation.
type NavAlignment string

const (
	NavLeft   NavAlignment = "left"
	NavCenter NavAlignment = "center"
	NavRight  NavAlignment = "right"
)

// HeaderConfig configures the site header. Unknown keys are kept in Extra.
type HeaderConfig struct {
	NavItems     []NavItem    `json:"navItems,omitempty"`
	PhoneNumber  string       `json:"phoneNumber,omitempty"`
	LogoSize     string       `json:"logoSize,omitempty"`
	LogoPosition LogoPosition `json:"logoPosition,omitempty"`
	NavStyle     string       `json:"navStyle,omitempty"`
	NavAlignment NavAlignment `json:"navAlignment,omitempty"`
	ShowCta      *bool        `json:"showCta,omitempty"`
	CtaText      string       `json:"ctaText,omitempty"`
	CtaLink      string       `json:"ctaLink,omitempty"`
	Sticky       *bool        `json:"sticky,omitempty"`
	Transparent  *bool        `json:"transparent,omitempty"`

	Extra map[string]any `json:"-"`
}

var headerKeys = keySet("navItems", "phoneNumber", "logoSize", "logoPosition", "navStyle", "navAlignment", "showCta", "ctaText", "ctaLink", "sticky", "transparent")

// MarshalJSON encodes the known fields followed by Extra.
func (c HeaderConfig) MarshalJSON() ([]byte, error) {
	type plain HeaderConfig
	return marshalOpen(plain(c), c.Extra)
}

// HeaderConfig normalizes a header configuration. Enum fields are only set
// when the CMS value is one of the allowed literals.
func (n *Normalizer) HeaderConfig(input any) HeaderConfig {
	in, ok := object(input)
	if !ok {
		if input != nil {
			n.warn("invalid header config", input)
		}
		return HeaderConfig{}
	}

	out := HeaderConfig{
		PhoneNumber: stringField(in, "phoneNumber"),
		LogoSize:    stringField(in, "logoSize"),
		NavStyle:    stringField(in, "navStyle"),
		CtaText:     stringField(in, "ctaText"),
		CtaLink:     stringField(in, "ctaLink"),
		ShowCta:     boolField(in, "showCta"),
		Sticky:      boolField(in, "sticky"),
		Transparent: boolField(in, "transparent"),
		Extra:       extras(in, headerKeys),
	}
	if _, ok := list(in["navItems"]); ok {
		out.NavItems = navItems(in["navItems"], "href")
	}
	switch p := LogoPosition(stringField(in, "logoPosition")); p {
	case LogoLeft, LogoCenter:
		out.LogoPosition = p
	}
	switch a := NavAlignment(stringField(in, "navAlignment")); a {
	case NavLeft, NavCenter, NavRight:
		out.NavAlignment = a
	}
	return out
}
