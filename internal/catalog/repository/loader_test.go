package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCuratedCatalogPreservesExtraFields(t *testing.T) {
	path := writeFile(t, "catalog.json", `[
		{"sku": "FF-1", "name": "Thing", "category": "table", "color_options": ["red"], "material": "wood", "price_usd": 99.5}
	]`)

	items, err := LoadCuratedCatalog(path)
	if err != nil {
		t.Fatalf("load curated catalog: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.SKU != "FF-1" || item.Name != "Thing" || item.Category != "table" {
		t.Fatalf("unexpected fixed fields: %+v", item)
	}
	if len(item.ColorOptions) != 1 || item.ColorOptions[0] != "red" {
		t.Fatalf("unexpected color options: %v", item.ColorOptions)
	}
	if item.Extra["material"] != "wood" {
		t.Fatalf("expected material preserved in extras, got %v", item.Extra)
	}

	out, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal item: %v", err)
	}
	for _, key := range []string{`"sku"`, `"material"`, `"price_usd"`} {
		if !strings.Contains(string(out), key) {
			t.Fatalf("serialized item missing %s: %s", key, out)
		}
	}
}

func TestLoadCuratedCatalogRejectsMalformedJSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `{"not": "an array"}`)
	if _, err := LoadCuratedCatalog(path); err == nil {
		t.Fatal("expected error for malformed catalog")
	}
}

func TestLoadReferenceItemsNormalizesRows(t *testing.T) {
	path := writeFile(t, "ref.csv", strings.Join([]string{
		"item_id,name,category,price,width,height,depth,short_description,other_colors,sellable_online,link,designer",
		`A-1,Shelf,Shelves,100,80,No size,28,"  Lots   of    space  ",No,TRUE,https://example.test/a1,Jane Doe`,
		`,Nameless,Shelves,50,,,,,,,,`,
		`A-2,No Price Item,Shelves,No price,,,,,Yellow,unknown,,`,
	}, "\n") + "\n", // trailing newline like the real export
	)

	items, err := LoadReferenceItems(path)
	if err != nil {
		t.Fatalf("load reference items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dropping the id-less row, got %d", len(items))
	}

	first := items[0]
	if first.ItemID != "A-1" {
		t.Fatalf("unexpected item id %q", first.ItemID)
	}
	if first.PriceUSD == nil || *first.PriceUSD != 26.67 {
		t.Fatalf("expected price 100 SAR converted to 26.67 USD, got %v", first.PriceUSD)
	}
	if first.PriceCurrency != "USD" || !strings.Contains(first.PriceNote, "0.2667") {
		t.Fatalf("unexpected price metadata: %q %q", first.PriceCurrency, first.PriceNote)
	}
	if first.ShortDescription != "Lots of space" {
		t.Fatalf("expected collapsed whitespace, got %q", first.ShortDescription)
	}
	if first.OtherColors != "" {
		t.Fatalf("expected 'No' colors cleared, got %q", first.OtherColors)
	}
	if first.SellableOnline == nil || !*first.SellableOnline {
		t.Fatalf("expected sellable_online true, got %v", first.SellableOnline)
	}
	if _, ok := first.DimensionsCM["height"]; ok {
		t.Fatal("expected 'No size' height to be dropped")
	}
	if first.DimensionsCM["width"] != 80 || first.DimensionsCM["depth"] != 28 {
		t.Fatalf("unexpected dimensions: %v", first.DimensionsCM)
	}
	if !strings.Contains(first.SearchText(), "a-1") || !strings.Contains(first.SearchText(), "jane doe") {
		t.Fatalf("unexpected search text: %q", first.SearchText())
	}

	second := items[1]
	if second.PriceUSD != nil || second.PriceCurrency != "" || second.PriceNote != "" {
		t.Fatalf("expected no price metadata for unpriced row, got %+v", second)
	}
	if second.SellableOnline != nil {
		t.Fatalf("expected unknown sellable_online to stay nil, got %v", second.SellableOnline)
	}
	if second.OtherColors != "Yellow" {
		t.Fatalf("expected colors kept, got %q", second.OtherColors)
	}
}

func TestLoadReferenceItemsMissingFile(t *testing.T) {
	_, err := LoadReferenceItems(filepath.Join(t.TempDir(), "absent.csv"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestReferenceSearchTextIsNotSerialized(t *testing.T) {
	path := writeFile(t, "ref.csv", strings.Join([]string{
		"item_id,name,category,price,width,height,depth,short_description,other_colors,sellable_online,link,designer",
		`B-1,Chair,Chairs,10,,,,comfy,No,TRUE,,`,
	}, "\n"))

	items, err := LoadReferenceItems(path)
	if err != nil {
		t.Fatalf("load reference items: %v", err)
	}

	out, err := json.Marshal(items[0])
	if err != nil {
		t.Fatalf("marshal reference item: %v", err)
	}
	if strings.Contains(strings.ToLower(string(out)), "search") {
		t.Fatalf("search text leaked into serialized item: %s", out)
	}
}
