package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTelHref(t *testing.T) {
	assert.Equal(t, "tel:+16502530000", TelHref("(650) 253-0000"))
	assert.Equal(t, "tel:+16502530000", TelHref("+1 650 253 0000"))
	assert.Equal(t, "tel:5550100", TelHref("555-0100"))
	assert.Equal(t, "tel:", TelHref("  "))
}

func TestButtonHref(t *testing.T) {
	cases := []struct {
		name string
		btn  *CtaButtonConfig
		want string
	}{
		{"nil", nil, "#"},
		{"page", &CtaButtonConfig{LinkType: LinkPage, PageSlug: "contact"}, "/contact"},
		{"page without slug", &CtaButtonConfig{LinkType: LinkPage}, "#"},
		{"custom url", &CtaButtonConfig{LinkType: LinkURL, CustomURL: "https://x.test", Href: "/"}, "https://x.test"},
		{"url default href", &CtaButtonConfig{LinkType: LinkURL, Href: "/"}, "/"},
		{"phone fallback", &CtaButtonConfig{LinkType: LinkPhone}, "tel:5550100"},
		{"email", &CtaButtonConfig{LinkType: LinkEmail, Email: "a@b.c"}, "mailto:a@b.c"},
		{"form", &CtaButtonConfig{LinkType: LinkForm}, "#"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ButtonHref(tc.btn, "555-0100"))
		})
	}
}
