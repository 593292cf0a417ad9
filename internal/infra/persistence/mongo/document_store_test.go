package mongo

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToDocument(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	objectID := primitive.NewObjectID()

	tests := []struct {
		name string
		raw  bson.M
		want entity.Document
	}{
		{
			name: "top level _id is dropped",
			raw:  bson.M{"_id": objectID, "id": "c1", "name": "Nuts"},
			want: entity.Document{"id": "c1", "name": "Nuts"},
		},
		{
			name: "nested documents become plain maps",
			raw: bson.M{
				"id": entity.SiteSettingsID,
				"theme": bson.D{
					{Key: "colors", Value: bson.M{"primary": "#7CB342"}},
					{Key: "typography", Value: bson.D{{Key: "headingFont", Value: "Poppins"}}},
				},
			},
			want: entity.Document{
				"id": entity.SiteSettingsID,
				"theme": map[string]any{
					"colors":     map[string]any{"primary": "#7CB342"},
					"typography": map[string]any{"headingFont": "Poppins"},
				},
			},
		},
		{
			name: "arrays become slices with converted items",
			raw: bson.M{
				"aboutStats": primitive.A{
					bson.M{"value": "10+", "label": "Years"},
					bson.D{{Key: "value", Value: "50k"}, {Key: "label", Value: "Customers"}},
				},
				"images": primitive.A{"/a.png", "/b.png"},
			},
			want: entity.Document{
				"aboutStats": []any{
					map[string]any{"value": "10+", "label": "Years"},
					map[string]any{"value": "50k", "label": "Customers"},
				},
				"images": []any{"/a.png", "/b.png"},
			},
		},
		{
			name: "driver scalar types become strings",
			raw: bson.M{
				"createdAt": primitive.NewDateTimeFromTime(createdAt),
				"ref":       objectID,
			},
			want: entity.Document{
				"createdAt": "2025-03-14T09:26:53Z",
				"ref":       objectID.Hex(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toDocument(tt.raw))
		})
	}
}

func TestToDocument_WireRoundTrip(t *testing.T) {
	original := entity.Document{
		"id":        "p1",
		"name":      "Almonds",
		"basePrice": 450.5,
		"featured":  true,
		"features":  []any{"100% Natural", "Premium Quality"},
		"priceVariants": map[string]any{
			"250g": 120.0,
			"1kg":  450.5,
		},
		"pageStyles": map[string]any{
			"home": map[string]any{"background": "#fff"},
		},
	}

	data, err := bson.Marshal(original)
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, bson.Unmarshal(data, &raw))
	raw["_id"] = primitive.NewObjectID()

	assert.Equal(t, original, toDocument(raw))
}

func TestToBSON(t *testing.T) {
	assert.Equal(t, bson.M{}, toBSON(nil))
	assert.Equal(t, bson.M{"id": "c1"}, toBSON(repository.ByID("c1")))
}
