package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fixfurn_backend/internal/catalog/repository"
	"fixfurn_backend/platform/logger"
)

const refHeader = "item_id,name,category,price,width,height,depth,short_description,other_colors,sellable_online,link,designer"

func writeReferenceCSV(t *testing.T, rows ...string) []repository.ReferenceItem {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.csv")
	content := refHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write reference csv: %v", err)
	}
	items, err := repository.LoadReferenceItems(path)
	if err != nil {
		t.Fatalf("load reference items: %v", err)
	}
	return items
}

func testCatalog() []repository.CatalogItem {
	return []repository.CatalogItem{
		{SKU: "FF-SOFA-001", Name: "Harbor 3-Seat Sofa", Category: "sofa", ColorOptions: []string{"charcoal", "sand"}},
		{SKU: "FF-TAB-010", Name: "Mesa Oak Dining Table", Category: "table", ColorOptions: []string{"natural oak"}},
		{SKU: "FF-CHR-020", Name: "Aria Dining Chair", Category: "chair", ColorOptions: []string{"black", "terracotta"}},
	}
}

func newTestService(curated []repository.CatalogItem, reference []repository.ReferenceItem) *Service {
	return New(repository.New(curated, reference), logger.New("test"))
}

func TestLookupEmptyQueryFails(t *testing.T) {
	svc := newTestService(testCatalog(), nil)

	for _, query := range []string{"", "   ", "\t\n"} {
		res := svc.Lookup(query)
		if res.OK {
			t.Fatalf("expected failure for query %q", query)
		}
		if res.Msg != "Please provide a product keyword, SKU, or IKEA item ID." {
			t.Fatalf("unexpected message: %q", res.Msg)
		}
	}
}

func TestLookupSKUMatchIsNotDuplicated(t *testing.T) {
	svc := newTestService(testCatalog(), nil)

	res := svc.Lookup("ff-sofa-001")
	if !res.OK {
		t.Fatalf("expected success, got %q", res.Msg)
	}
	if res.CatalogMatch == nil || res.CatalogMatch.SKU != "FF-SOFA-001" {
		t.Fatalf("expected best match FF-SOFA-001, got %+v", res.CatalogMatch)
	}
	if len(res.CatalogResults) != 0 {
		t.Fatalf("expected no name results alongside a SKU match, got %d", len(res.CatalogResults))
	}
}

func TestLookupNameAndColorSubstring(t *testing.T) {
	svc := newTestService(testCatalog(), nil)

	res := svc.Lookup("dining")
	if !res.OK {
		t.Fatalf("expected success, got %q", res.Msg)
	}
	if len(res.CatalogResults) != 2 {
		t.Fatalf("expected 2 name results, got %d", len(res.CatalogResults))
	}

	res = svc.Lookup("terracotta")
	if len(res.CatalogResults) != 1 || res.CatalogResults[0].SKU != "FF-CHR-020" {
		t.Fatalf("expected color match on FF-CHR-020, got %+v", res.CatalogResults)
	}
}

func TestLookupCategoryExactMatch(t *testing.T) {
	svc := newTestService(testCatalog(), nil)

	res := svc.Lookup("SOFA")
	if !res.OK {
		t.Fatalf("expected success, got %q", res.Msg)
	}
	if len(res.CatalogCategory) != 1 || res.CatalogCategory[0].SKU != "FF-SOFA-001" {
		t.Fatalf("expected category hit FF-SOFA-001, got %+v", res.CatalogCategory)
	}
}

func TestLookupNoMatchFails(t *testing.T) {
	svc := newTestService(testCatalog(), nil)

	res := svc.Lookup("submarine")
	if res.OK {
		t.Fatal("expected failure for unmatched query")
	}
	if res.Msg != "No products found for 'submarine'." {
		t.Fatalf("unexpected message: %q", res.Msg)
	}
}

func TestLookupReferenceOnlyHit(t *testing.T) {
	reference := writeReferenceCSV(t,
		`IKEA-123,BILLY Bookcase,Bookcases,299,80,202,28,Adjustable shelves,No,TRUE,https://example.test/billy,IKEA of Sweden`,
	)
	svc := newTestService(testCatalog(), reference)

	res := svc.Lookup("IKEA-123")
	if !res.OK {
		t.Fatalf("expected success, got %q", res.Msg)
	}
	if res.CatalogMatch != nil || len(res.CatalogResults) != 0 || len(res.CatalogCategory) != 0 {
		t.Fatalf("expected curated channels empty, got %+v", res)
	}
	if len(res.IkeaResults) != 1 || res.IkeaResults[0].ItemID != "IKEA-123" {
		t.Fatalf("expected single reference hit IKEA-123, got %+v", res.IkeaResults)
	}
}

func TestReferenceExactIDOutranksSubstringHits(t *testing.T) {
	reference := writeReferenceCSV(t,
		`IKEA-500,Aardvark IKEA Shelf,Shelves,100,,,,popular ikea shelf,No,TRUE,,Designer A`,
		`IKEA-501,Zed Cabinet,Cabinets,100,,,,plain cabinet,No,TRUE,,Designer B`,
	)
	svc := newTestService(nil, reference)

	res := svc.Lookup("ikea-501")
	if !res.OK {
		t.Fatalf("expected success, got %q", res.Msg)
	}
	if len(res.IkeaResults) == 0 || res.IkeaResults[0].ItemID != "IKEA-501" {
		t.Fatalf("expected IKEA-501 ranked first, got %+v", res.IkeaResults)
	}
}

func TestReferenceDeduplicatesAndCapsResults(t *testing.T) {
	rows := []string{
		// Duplicate id with different names; the higher-scoring row must win.
		`DUP-1,lamp,Lighting,50,,,,plain,No,TRUE,,`,
		`DUP-1,lamp lamp deluxe,Lighting,60,,,,great lamp for lamp lovers,No,TRUE,,`,
	}
	for i := 0; i < 8; i++ {
		rows = append(rows, fmt.Sprintf(`FILL-%d,lamp model %d,Lighting,10,,,,basic lamp,No,TRUE,,`, i, i))
	}
	reference := writeReferenceCSV(t, rows...)
	svc := newTestService(nil, reference)

	res := svc.Lookup("lamp deluxe")
	if !res.OK {
		t.Fatalf("expected success, got %q", res.Msg)
	}
	if len(res.IkeaResults) != 5 {
		t.Fatalf("expected results capped at 5, got %d", len(res.IkeaResults))
	}

	seen := make(map[string]int)
	for _, item := range res.IkeaResults {
		seen[item.ItemID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Fatalf("item %s appears %d times", id, n)
		}
	}
	if res.IkeaResults[0].ItemID != "DUP-1" || res.IkeaResults[0].Name != "lamp lamp deluxe" {
		t.Fatalf("expected deduplicated DUP-1 ranked first with its best row, got %+v", res.IkeaResults[0])
	}
}

func TestReferenceTiesBreakByName(t *testing.T) {
	reference := writeReferenceCSV(t,
		`T-2,beta stool,Stools,10,,,,stool,No,TRUE,,`,
		`T-1,alpha stool,Stools,10,,,,stool,No,TRUE,,`,
	)
	svc := newTestService(nil, reference)

	res := svc.Lookup("stool")
	if len(res.IkeaResults) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res.IkeaResults))
	}
	if res.IkeaResults[0].Name != "alpha stool" || res.IkeaResults[1].Name != "beta stool" {
		t.Fatalf("expected alphabetical tie-break, got %q then %q", res.IkeaResults[0].Name, res.IkeaResults[1].Name)
	}
}
