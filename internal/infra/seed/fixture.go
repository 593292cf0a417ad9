// Package seed provides the catalogue loaded into an empty store.
package seed

import (
	_ "embed"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var fixtureYAML []byte

type fixture struct {
	Categories   []map[string]any `yaml:"categories"`
	Products     []map[string]any `yaml:"products"`
	HeroSlides   []map[string]any `yaml:"hero_slides"`
	Testimonials []map[string]any `yaml:"testimonials"`
	GiftBoxes    []map[string]any `yaml:"gift_boxes"`
	SiteSettings map[string]any   `yaml:"site_settings"`
}

// embeddedSource implements the service.SeedSource interface from a YAML document.
type embeddedSource struct {
	raw []byte
}

// NewEmbeddedSource returns the fixture compiled into the binary.
func NewEmbeddedSource() service.SeedSource {
	return &embeddedSource{raw: fixtureYAML}
}

// NewSource parses fixtures from arbitrary YAML, mainly for tests.
func NewSource(raw []byte) service.SeedSource {
	return &embeddedSource{raw: raw}
}

func (s *embeddedSource) Load() (*service.SeedData, error) {
	var f fixture
	if err := yaml.Unmarshal(s.raw, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse seed fixture")
	}

	data := &service.SeedData{}
	var err error
	if data.Categories, err = toDocuments(f.Categories); err != nil {
		return nil, err
	}
	if data.Products, err = toDocuments(f.Products); err != nil {
		return nil, err
	}
	if data.HeroSlides, err = toDocuments(f.HeroSlides); err != nil {
		return nil, err
	}
	if data.Testimonials, err = toDocuments(f.Testimonials); err != nil {
		return nil, err
	}
	if data.GiftBoxes, err = toDocuments(f.GiftBoxes); err != nil {
		return nil, err
	}
	if f.SiteSettings != nil {
		if data.SiteSettings, err = entity.ToDocument(f.SiteSettings); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// toDocuments normalises YAML scalars into their JSON shapes.
func toDocuments(items []map[string]any) ([]entity.Document, error) {
	docs := make([]entity.Document, 0, len(items))
	for _, item := range items {
		doc, err := entity.ToDocument(item)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
