package seed

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSource_Load(t *testing.T) {
	data, err := NewEmbeddedSource().Load()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Categories)
	assert.NotEmpty(t, data.Products)
	assert.NotEmpty(t, data.HeroSlides)
	assert.NotEmpty(t, data.Testimonials)
	assert.NotEmpty(t, data.GiftBoxes)
	assert.Equal(t, "DryFruto", data.SiteSettings["businessName"])

	for _, doc := range data.Products {
		assert.NotEmpty(t, doc.ID())

		var p entity.Product
		require.NoError(t, doc.Decode(&p))
		assert.NotEmpty(t, p.PriceVariants)
		assert.Positive(t, p.BasePrice)
	}
}

func TestSource_Load_InvalidYAML(t *testing.T) {
	_, err := NewSource([]byte("categories: [")).Load()
	assert.Error(t, err)
}

func TestSource_Load_Empty(t *testing.T) {
	data, err := NewSource([]byte("{}")).Load()
	require.NoError(t, err)

	assert.Empty(t, data.Products)
	assert.Nil(t, data.SiteSettings)
}
