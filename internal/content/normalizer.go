// Package content turns loosely-typed CMS documents into typed, default-filled
// configuration records. Normalization never fails: malformed or missing
// fields degrade to absent values and the rest of the document is kept.
package content

import (
	"fmt"

	"go.uber.org/zap"
)

// Normalizer carries the diagnostic logger used when a CMS payload has the
// wrong shape. Diagnostics never change the normalized output.
type Normalizer struct {
	log *zap.Logger
}

// New returns a Normalizer reporting malformed payloads to logger. A nil
// logger disables diagnostics, which is the production setting.
func New(logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{log: logger.Named("content")}
}

var std = New(nil)

func (n *Normalizer) warn(msg string, input any) {
	if n == nil || n.log == nil {
		return
	}
	n.log.Warn(msg, zap.String("type", fmt.Sprintf("%T", input)), zap.Any("input", input))
}

// NormalizeCtaButton normalizes a CTA button without diagnostics.
func NormalizeCtaButton(input any, fallbackText, fallbackPhone string) *CtaButtonConfig {
	return std.CtaButton(input, fallbackText, fallbackPhone)
}

// NormalizeFooterConfig normalizes a footer configuration without diagnostics.
func NormalizeFooterConfig(input any) FooterConfig {
	return std.FooterConfig(input)
}

// NormalizeHeaderConfig normalizes a header configuration without diagnostics.
func NormalizeHeaderConfig(input any) HeaderConfig {
	return std.HeaderConfig(input)
}

// NormalizeSectionsContent normalizes homepage sections without diagnostics.
func NormalizeSectionsContent(input any) SectionsContent {
	return std.SectionsContent(input)
}

// NormalizeProject normalizes a project document without diagnostics.
func NormalizeProject(input any) Project {
	return std.Project(input)
}

// NormalizeGlobalCta derives the global CTA bundle without diagnostics.
func NormalizeGlobalCta(design any, fallbackPhone string) GlobalCta {
	return std.GlobalCta(design, fallbackPhone)
}
