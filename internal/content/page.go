package content

// Page is a content item (page, service, city, blog post) from the CMS.
type Page struct {
	ID               string          `json:"id,omitempty"`
	Slug             string          `json:"slug"`
	Type             string          `json:"type,omitempty"`
	Title            string          `json:"title,omitempty"`
	H1               string          `json:"h1,omitempty"`
	Excerpt          string          `json:"excerpt,omitempty"`
	MetaTitle        string          `json:"meta_title,omitempty"`
	MetaDescription  string          `json:"meta_description,omitempty"`
	BodyMD           string          `json:"body_md,omitempty"`
	FeaturedImageURL string          `json:"featured_image_url,omitempty"`
	Sections         SectionsContent `json:"sections_content"`
}

// City is a service-area entry shown by the areas section.
type City struct {
	ID      string `json:"id,omitempty"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt,omitempty"`
}

// Page normalizes a content item. ok is false when input is not an object.
func (n *Normalizer) Page(input any) (Page, bool) {
	in, ok := object(input)
	if !ok {
		if input != nil {
			n.warn("invalid content item", input)
		}
		return Page{}, false
	}
	return Page{
		ID:               stringField(in, "id"),
		Slug:             stringField(in, "slug"),
		Type:             stringField(in, "type"),
		Title:            stringField(in, "title"),
		H1:               stringField(in, "h1"),
		Excerpt:          stringField(in, "excerpt"),
		MetaTitle:        stringField(in, "meta_title"),
		MetaDescription:  stringField(in, "meta_description"),
		BodyMD:           stringField(in, "body_md"),
		FeaturedImageURL: stringField(in, "featured_image_url"),
		Sections:         n.SectionsContent(in["sections_content"]),
	}, true
}

// Cities normalizes a list of city items, dropping entries without a slug.
// A missing title falls back to the slug.
func (n *Normalizer) Cities(items []any) []City {
	out := make([]City, 0, len(items))
	for _, item := range items {
		in, ok := object(item)
		if !ok {
			continue
		}
		city := City{
			ID:      stringField(in, "id"),
			Slug:    stringField(in, "slug"),
			Title:   stringField(in, "title"),
			Excerpt: stringField(in, "excerpt"),
		}
		if city.Slug == "" {
			continue
		}
		if city.Title == "" {
			city.Title = city.Slug
		}
		out = append(out, city)
	}
	return out
}

// ServiceLinks maps service items to footer links pointing at
// /services/<slug>, keeping at most limit entries.
func (n *Normalizer) ServiceLinks(items []any, limit int) []NavItem {
	out := make([]NavItem, 0, len(items))
	for _, item := range items {
		if limit > 0 && len(out) == limit {
			break
		}
		in, ok := object(item)
		if !ok {
			continue
		}
		slug := stringField(in, "slug")
		if slug == "" {
			continue
		}
		label := stringField(in, "title")
		if label == "" {
			label = slug
		}
		out = append(out, NavItem{Label: label, Href: "/services/" + slug})
	}
	return out
}
