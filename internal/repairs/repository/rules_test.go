package repository

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "price_rules.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	return path
}

func TestLoadRulesDecodesTuples(t *testing.T) {
	path := writeRules(t, `{
		"wobble": {
			"wood": {"large": [80, 150, 2, 4]},
			"any": {"medium": [50, 100, 1, 3]}
		}
	}`)

	table, err := LoadRules(path)
	if err != nil {
		t.Fatalf("load rules: %v", err)
	}

	bucket := table["wobble"]["wood"]["large"]
	want := Bucket{MinPrice: 80, MaxPrice: 150, MinDays: 2, MaxDays: 4}
	if bucket != want {
		t.Fatalf("expected %+v, got %+v", want, bucket)
	}
}

func TestLoadRulesRejectsBadData(t *testing.T) {
	cases := map[string]string{
		"unknown size":    `{"wobble": {"any": {"huge": [1, 2, 1, 2]}}}`,
		"short tuple":     `{"wobble": {"any": {"small": [1, 2, 1]}}}`,
		"negative price":  `{"wobble": {"any": {"small": [-1, 2, 1, 2]}}}`,
		"min above max":   `{"wobble": {"any": {"small": [5, 2, 1, 2]}}}`,
		"days above max":  `{"wobble": {"any": {"small": [1, 2, 4, 2]}}}`,
		"not a rule tree": `["nope"]`,
	}
	for name, content := range cases {
		if _, err := LoadRules(writeRules(t, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestResolvePrefersExactMaterial(t *testing.T) {
	table := RuleTable{
		"wobble": {
			"wood": {"small": {MinPrice: 30, MaxPrice: 60, MinDays: 1, MaxDays: 2}},
			"any":  {"small": {MinPrice: 10, MaxPrice: 20, MinDays: 1, MaxDays: 1}},
		},
	}

	sizes, ok := table.Resolve("wobble", "wood")
	if !ok || sizes["small"].MinPrice != 30 {
		t.Fatalf("expected exact wood bucket, got %v ok=%v", sizes, ok)
	}

	sizes, ok = table.Resolve("wobble", "metal")
	if !ok || sizes["small"].MinPrice != 10 {
		t.Fatalf("expected wildcard fallback, got %v ok=%v", sizes, ok)
	}

	if _, ok := table.Resolve("missing", "wood"); ok {
		t.Fatal("expected miss for unknown issue")
	}
}

func TestResolveFailsWithoutWildcard(t *testing.T) {
	table := RuleTable{
		"broken_glass": {
			"glass": {"medium": {MinPrice: 80, MaxPrice: 140, MinDays: 3, MaxDays: 5}},
		},
	}
	if _, ok := table.Resolve("broken_glass", "wood"); ok {
		t.Fatal("expected miss when neither material nor wildcard exists")
	}
}

func TestMaterialsSorted(t *testing.T) {
	table := RuleTable{
		"wobble": {
			"wood":  {},
			"any":   {},
			"metal": {},
		},
	}
	got := table.Materials("wobble")
	want := []string{"any", "metal", "wood"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
