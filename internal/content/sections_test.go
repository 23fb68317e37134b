package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsDefaultOrder(t *testing.T) {
	sections := NormalizeSectionsContent(map[string]any{
		"hero": map[string]any{},
		"faq":  map[string]any{},
	})
	require.NotNil(t, sections.Hero)
	require.NotNil(t, sections.FAQ)
	assert.Equal(t, 0.0, sections.Hero.Order)
	assert.True(t, sections.Hero.Enabled)
	assert.Equal(t, 999.0, sections.FAQ.Order)
	assert.True(t, sections.FAQ.Enabled)
	assert.Nil(t, sections.About)
	assert.Nil(t, sections.Stats)

	ordered := sections.Ordered()
	require.Len(t, ordered, 2)
	assert.Equal(t, SectionHero, ordered[0].Key)
	assert.Equal(t, SectionFAQ, ordered[1].Key)
}

func TestSectionsHeroAndAboutValidated(t *testing.T) {
	sections := NormalizeSectionsContent(map[string]any{
		"hero": map[string]any{
			"headline":        "Fast plumbing",
			"subheadline":     12.0,
			"backgroundImage": "/bg.jpg",
			"_enabled":        "no",
			"_order":          "first",
			"unknown":         "dropped",
		},
		"about": map[string]any{
			"title":      "About us",
			"content_md": "**hi**",
			"_enabled":   false,
			"_order":     5.0,
		},
	})
	require.NotNil(t, sections.Hero)
	assert.Equal(t, HeroSection{
		SectionBase:     SectionBase{Enabled: true, Order: 0},
		Headline:        "Fast plumbing",
		BackgroundImage: "/bg.jpg",
	}, *sections.Hero)
	require.NotNil(t, sections.About)
	assert.Equal(t, AboutSection{
		SectionBase: SectionBase{Enabled: false, Order: 5},
		Title:       "About us",
		ContentMD:   "**hi**",
	}, *sections.About)
}

func TestSectionsPassThrough(t *testing.T) {
	items := []any{map[string]any{"question": "Q?", "answer": "A."}}
	sections := NormalizeSectionsContent(map[string]any{
		"faq":     map[string]any{"title": "FAQ", "items": items, "_order": 3.0},
		"pricing": map[string]any{"tiers": "not-validated", "_enabled": false},
		"gallery": map[string]any{"title": "unknown sections are ignored"},
		"stats":   "not an object",
	})

	require.NotNil(t, sections.FAQ)
	assert.Equal(t, SectionBase{Enabled: true, Order: 3}, sections.FAQ.SectionBase)
	assert.Equal(t, map[string]any{"title": "FAQ", "items": items}, sections.FAQ.Fields)
	require.NotNil(t, sections.Pricing)
	assert.False(t, sections.Pricing.Enabled)
	assert.Equal(t, 999.0, sections.Pricing.Order)
	assert.Equal(t, "not-validated", sections.Pricing.Fields["tiers"])
	assert.Nil(t, sections.Stats)

	b, err := json.Marshal(sections.FAQ)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_enabled":true,"_order":3,"title":"FAQ","items":[{"question":"Q?","answer":"A."}]}`, string(b))
}

func TestSectionsOrderedSkipsDisabledAndKeepsTies(t *testing.T) {
	sections := NormalizeSectionsContent(map[string]any{
		"pricing":  map[string]any{"_order": 2.0},
		"cta":      map[string]any{"_order": 2.0},
		"services": map[string]any{"_order": 2.0},
		"about":    map[string]any{"_order": 10.0},
		"hero":     map[string]any{"_enabled": false},
		"areas":    map[string]any{},
	})
	var keys []string
	for _, e := range sections.Ordered() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{SectionServices, SectionCTA, SectionPricing, SectionAbout, SectionAreas}, keys)
	assert.True(t, sections.Enabled(SectionAreas))
	assert.False(t, sections.Enabled(SectionHero))
	assert.False(t, sections.Enabled(SectionStats))
}

func TestSectionsAcceptIntegerOrders(t *testing.T) {
	// yaml documents decode numbers as int
	sections := NormalizeSectionsContent(map[string]any{"process": map[string]any{"_order": 4}})
	require.NotNil(t, sections.Process)
	assert.Equal(t, 4.0, sections.Process.Order)
}
