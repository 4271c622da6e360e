package repository

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Rough mid-market exchange rate applied to reference prices at load time.
const sarToUSD = 0.2667

var whitespaceRun = regexp.MustCompile(`\s+`)

// LoadCuratedCatalog reads the curated product list. Any failure here is fatal
// to startup; the assistant must not run with a partial catalog.
func LoadCuratedCatalog(path string) ([]CatalogItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curated catalog: %w", err)
	}

	var items []CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse curated catalog: %w", err)
	}
	return items, nil
}

// LoadReferenceItems reads the IKEA reference CSV. Rows without an item_id or
// name are dropped. Duplicate item_ids are tolerated; the search path collapses
// them at query time. Callers decide whether a missing file is fatal.
func LoadReferenceItems(path string) ([]ReferenceItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read reference header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var items []ReferenceItem
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read reference row: %w", err)
		}

		itemID := field(record, "item_id")
		name := field(record, "name")
		if itemID == "" || name == "" {
			continue
		}

		item := ReferenceItem{
			ItemID:           itemID,
			Name:             name,
			Category:         field(record, "category"),
			Link:             field(record, "link"),
			Designer:         field(record, "designer"),
			SellableOnline:   parseBool(field(record, "sellable_online")),
			ShortDescription: normalizeWhitespace(field(record, "short_description")),
			OtherColors:      normalizeColors(field(record, "other_colors")),
			DimensionsCM:     map[string]float64{},
		}

		if price := parseFloat(field(record, "price")); price != nil {
			usd := round2(*price * sarToUSD)
			item.PriceUSD = &usd
			item.PriceCurrency = "USD"
			item.PriceNote = fmt.Sprintf("Converted from SAR at 1 SAR = %.4f USD", sarToUSD)
		}

		for _, dim := range []string{"width", "height", "depth"} {
			if v := parseFloat(field(record, dim)); v != nil {
				item.DimensionsCM[dim] = *v
			}
		}

		item.search = buildSearchText(item)
		items = append(items, item)
	}

	return items, nil
}

func buildSearchText(item ReferenceItem) string {
	parts := make([]string, 0, 6)
	for _, s := range []string{
		item.ItemID,
		item.Name,
		item.Category,
		item.ShortDescription,
		item.OtherColors,
		item.Designer,
	} {
		if s != "" {
			parts = append(parts, strings.ToLower(s))
		}
	}
	return strings.Join(parts, " ")
}

// parseFloat returns nil for empty values and for the dataset's textual
// "No size"/"No price" placeholders.
func parseFloat(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(strings.ToLower(value), "no ") {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &f
}

// parseBool maps the dataset's assorted truthy/falsy spellings onto a
// tri-state boolean; unrecognized values stay unknown.
func parseBool(value string) *bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "1":
		v := true
		return &v
	case "false", "no", "n", "0":
		v := false
		return &v
	default:
		return nil
	}
}

func normalizeWhitespace(value string) string {
	if value == "" {
		return ""
	}
	return whitespaceRun.ReplaceAllString(value, " ")
}

// normalizeColors clears the source values that mean "no other colors".
func normalizeColors(value string) string {
	switch strings.ToLower(value) {
	case "no", "n/a":
		return ""
	default:
		return value
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
