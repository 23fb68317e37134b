package content

// Project is the business profile. NAP fields hold the canonical name,
// address and phone.
type Project struct {
	Name            string       `json:"name,omitempty"`
	Slug            string       `json:"slug,omitempty"`
	LogoURL         string       `json:"logo_url,omitempty"`
	NapName         string       `json:"nap_name,omitempty"`
	NapPhone        string       `json:"nap_phone,omitempty"`
	NapEmail        string       `json:"nap_email,omitempty"`
	NapAddress      string       `json:"nap_address,omitempty"`
	NapCity         string       `json:"nap_city,omitempty"`
	NapState        string       `json:"nap_state,omitempty"`
	NapZip          string       `json:"nap_zip,omitempty"`
	PrimaryCategory string       `json:"primary_category,omitempty"`
	HeaderConfig    HeaderConfig `json:"header_config"`
	FooterConfig    FooterConfig `json:"footer_config"`
}

// Project normalizes a project document. The nested header and footer
// configs always go through their own normalizers.
func (n *Normalizer) Project(input any) Project {
	in, ok := object(input)
	if !ok {
		if input != nil {
			n.warn("invalid project data", input)
		}
		return Project{}
	}
	return Project{
		Name:            stringField(in, "name"),
		Slug:            stringField(in, "slug"),
		LogoURL:         stringField(in, "logo_url"),
		NapName:         stringField(in, "nap_name"),
		NapPhone:        stringField(in, "nap_phone"),
		NapEmail:        stringField(in, "nap_email"),
		NapAddress:      stringField(in, "nap_address"),
		NapCity:         stringField(in, "nap_city"),
		NapState:        stringField(in, "nap_state"),
		NapZip:          stringField(in, "nap_zip"),
		PrimaryCategory: stringField(in, "primary_category"),
		HeaderConfig:    n.HeaderConfig(in["header_config"]),
		FooterConfig:    n.FooterConfig(in["footer_config"]),
	}
}
