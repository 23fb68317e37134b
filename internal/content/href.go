package content

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "US"

var nonDigit = regexp.MustCompile(`\D`)

// TelHref builds a tel: link. Numbers recognised for the default region are
// written in E.164, anything else keeps its digits only.
func TelHref(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "tel:"
	}
	if num, err := phonenumbers.Parse(phone, defaultPhoneRegion); err == nil && phonenumbers.IsValidNumber(num) {
		return "tel:" + phonenumbers.Format(num, phonenumbers.E164)
	}
	return "tel:" + nonDigit.ReplaceAllString(phone, "")
}

// ButtonHref resolves the destination of a normalized button. Buttons that
// cannot be resolved link to "#".
func ButtonHref(btn *CtaButtonConfig, fallbackPhone string) string {
	if btn == nil || btn.LinkType == "" {
		return "#"
	}
	switch btn.LinkType {
	case LinkPage:
		if btn.PageSlug == "" {
			return "#"
		}
		return "/" + strings.TrimPrefix(btn.PageSlug, "/")
	case LinkURL:
		switch {
		case btn.CustomURL != "":
			return btn.CustomURL
		case btn.Href != "":
			return btn.Href
		}
		return "#"
	case LinkPhone:
		phone := btn.PhoneNumber
		if phone == "" {
			phone = fallbackPhone
		}
		return TelHref(phone)
	case LinkEmail:
		return "mailto:" + btn.Email
	}
	return "#"
}
