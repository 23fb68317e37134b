// Package markdown converts CMS markdown fields into sanitized HTML.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("figure", "figcaption")
	p.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span")
	p.AllowAttrs("loading").OnElements("img")
	p.RequireNoFollowOnLinks(true)
	return p
}

// Render converts markdown to HTML that is safe to embed in a page. Empty
// input renders as an empty string; conversion errors also yield an empty
// string so a bad field never breaks the page.
func Render(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return ""
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
