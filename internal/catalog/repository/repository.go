// Package repository holds the in-memory product data consumed by the catalog
// service. Both datasets are loaded once at startup and never mutated, so they
// are safe for concurrent reads.
package repository

import "encoding/json"

// CatalogItem is one curated Fix&Furn product. Beyond the fixed attributes the
// source JSON may carry arbitrary descriptive fields; those are preserved in
// Extra and round-tripped on serialization.
type CatalogItem struct {
	SKU          string
	Name         string
	Category     string
	ColorOptions []string
	Extra        map[string]any
}

// UnmarshalJSON captures the fixed attributes and keeps every unknown field.
func (it *CatalogItem) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["sku"].(string); ok {
		it.SKU = v
	}
	if v, ok := raw["name"].(string); ok {
		it.Name = v
	}
	if v, ok := raw["category"].(string); ok {
		it.Category = v
	}
	if opts, ok := raw["color_options"].([]any); ok {
		it.ColorOptions = make([]string, 0, len(opts))
		for _, opt := range opts {
			if s, ok := opt.(string); ok {
				it.ColorOptions = append(it.ColorOptions, s)
			}
		}
	}

	delete(raw, "sku")
	delete(raw, "name")
	delete(raw, "category")
	delete(raw, "color_options")
	if len(raw) > 0 {
		it.Extra = raw
	}
	return nil
}

// MarshalJSON emits the fixed attributes merged with the preserved extras.
func (it CatalogItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(it.Extra)+4)
	for k, v := range it.Extra {
		out[k] = v
	}
	out["sku"] = it.SKU
	out["name"] = it.Name
	out["category"] = it.Category
	out["color_options"] = it.ColorOptions
	return json.Marshal(out)
}

// ReferenceItem is one row of the IKEA reference dataset after normalization.
// Prices are converted from SAR to USD at load time; the conversion is recorded
// in PriceNote. The search field concatenates every searchable text attribute
// in lowercase and is never serialized.
type ReferenceItem struct {
	ItemID           string             `json:"item_id"`
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	PriceUSD         *float64           `json:"price_usd"`
	PriceCurrency    string             `json:"price_currency,omitempty"`
	PriceNote        string             `json:"price_note,omitempty"`
	SellableOnline   *bool              `json:"sellable_online"`
	Link             string             `json:"link"`
	OtherColors      string             `json:"other_colors"`
	ShortDescription string             `json:"short_description"`
	Designer         string             `json:"designer"`
	DimensionsCM     map[string]float64 `json:"dimensions_cm"`

	search string
}

// SearchText returns the precomputed lowercase searchable text.
func (r ReferenceItem) SearchText() string {
	return r.search
}

// Repository provides read access to the loaded product datasets.
type Repository interface {
	CuratedItems() []CatalogItem
	ReferenceItems() []ReferenceItem
}

type store struct {
	curated   []CatalogItem
	reference []ReferenceItem
}

// New creates a repository over already-loaded datasets.
func New(curated []CatalogItem, reference []ReferenceItem) Repository {
	return &store{curated: curated, reference: reference}
}

func (s *store) CuratedItems() []CatalogItem {
	return s.curated
}

func (s *store) ReferenceItems() []ReferenceItem {
	return s.reference
}
