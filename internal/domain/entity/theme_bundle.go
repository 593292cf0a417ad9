package entity

import (
	"regexp"
	"time"
)

// ThemeExportVersion is written into every exported bundle.
const ThemeExportVersion = "1.0"

var whitespace = regexp.MustCompile(`\s+`)

// ThemeBundle is the portable snapshot of settings and content collections.
// Collection entries are kept as raw documents so import restores them verbatim.
type ThemeBundle struct {
	ExportVersion string     `json:"exportVersion"`
	ExportDate    string     `json:"exportDate"`
	ThemeName     string     `json:"themeName"`
	SiteSettings  Document   `json:"siteSettings"`
	Categories    []Document `json:"categories"`
	Products      []Document `json:"products"`
	HeroSlides    []Document `json:"heroSlides"`
	Testimonials  []Document `json:"testimonials"`
	GiftBoxes     []Document `json:"giftBoxes"`
}

// NewThemeBundle stamps a bundle with the export version and date.
func NewThemeBundle(themeName string, now time.Time) *ThemeBundle {
	return &ThemeBundle{
		ExportVersion: ThemeExportVersion,
		ExportDate:    FormatTimestamp(now),
		ThemeName:     themeName,
		Categories:    []Document{},
		Products:      []Document{},
		HeroSlides:    []Document{},
		Testimonials:  []Document{},
		GiftBoxes:     []Document{},
	}
}

// FileName is the attachment name offered for download.
func (b *ThemeBundle) FileName() string {
	name := b.ThemeName
	if name == "" {
		name = DefaultThemeName
	}

	return whitespace.ReplaceAllString(name, "_") + "_theme_export.json"
}

// ThemeImport is an uploaded bundle. Absent keys decode to nil and are skipped.
type ThemeImport struct {
	SiteSettings Document   `json:"siteSettings"`
	Categories   []Document `json:"categories"`
	Products     []Document `json:"products"`
	HeroSlides   []Document `json:"heroSlides"`
	Testimonials []Document `json:"testimonials"`
	GiftBoxes    []Document `json:"giftBoxes"`
}

// ImportResult acknowledges a completed import.
type ImportResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
