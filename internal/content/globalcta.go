package content

const (
	defaultPrimaryText   = "Get Quote"
	defaultSecondaryText = "Learn More"
)

// GlobalCta is the CTA bundle shared by the hero and CTA sections.
type GlobalCta struct {
	PhoneNumber   string           `json:"phoneNumber,omitempty"`
	PrimaryText   string           `json:"primaryText"`
	SecondaryText string           `json:"secondaryText"`
	HeroPrimary   *CtaButtonConfig `json:"heroPrimary,omitempty"`
	HeroSecondary *CtaButtonConfig `json:"heroSecondary,omitempty"`
	CtaSection    *CtaButtonConfig `json:"ctaSection,omitempty"`
}

// GlobalCta derives the CTA bundle from a design payload. The payload may be
// the design response itself or wrap it under "template". Every button is
// seeded with the resolved texts and phone.
func (n *Normalizer) GlobalCta(design any, fallbackPhone string) GlobalCta {
	out := GlobalCta{
		PhoneNumber:   fallbackPhone,
		PrimaryText:   defaultPrimaryText,
		SecondaryText: defaultSecondaryText,
	}
	payload, ok := object(design)
	if !ok {
		return out
	}
	tmpl, ok := object(payload["template"])
	if !ok {
		tmpl = payload
	}
	cta, ok := object(tmpl["globalCta"])
	if !ok {
		cta = map[string]any{}
	}

	out.PhoneNumber = firstString(cta, out.PhoneNumber, "phoneNumber")
	out.PrimaryText = firstString(cta, out.PrimaryText, "primaryText")
	out.SecondaryText = firstString(cta, out.SecondaryText, "secondaryText")

	phone := out.PhoneNumber
	if phone == "" {
		phone = fallbackPhone
	}
	out.HeroPrimary = n.CtaButton(cta["heroPrimary"], out.PrimaryText, phone)
	out.HeroSecondary = n.CtaButton(cta["heroSecondary"], out.SecondaryText, phone)
	out.CtaSection = n.CtaButton(cta["ctaSection"], out.PrimaryText, phone)
	return out
}
