// Package repository loads and resolves the repair pricing rule table.
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// MaterialAny is the wildcard material bucket.
const MaterialAny = "any"

// Valid size buckets.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Bucket is the price/duration range for one (material, size) cell.
// Serialized as a 4-tuple: [min price, max price, min days, max days].
type Bucket struct {
	MinPrice float64
	MaxPrice float64
	MinDays  int
	MaxDays  int
}

// UnmarshalJSON decodes the 4-tuple representation.
func (b *Bucket) UnmarshalJSON(data []byte) error {
	var tuple []float64
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 4 {
		return fmt.Errorf("bucket must have exactly 4 values, got %d", len(tuple))
	}
	b.MinPrice = tuple[0]
	b.MaxPrice = tuple[1]
	b.MinDays = int(tuple[2])
	b.MaxDays = int(tuple[3])
	return nil
}

// MarshalJSON encodes the 4-tuple representation.
func (b Bucket) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{b.MinPrice, b.MaxPrice, float64(b.MinDays), float64(b.MaxDays)})
}

// RuleTable maps issue -> material -> size -> bucket.
type RuleTable map[string]map[string]map[string]Bucket

// LoadRules reads and validates the pricing rule table. Any violation is
// fatal: running with partial pricing data would produce wrong estimates.
func LoadRules(path string) (RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price rules: %w", err)
	}

	var table RuleTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse price rules: %w", err)
	}

	for issue, materials := range table {
		for material, sizes := range materials {
			for size, bucket := range sizes {
				if size != SizeSmall && size != SizeMedium && size != SizeLarge {
					return nil, fmt.Errorf("price rules: unknown size %q under %s/%s", size, issue, material)
				}
				if bucket.MinPrice < 0 || bucket.MinDays < 0 {
					return nil, fmt.Errorf("price rules: negative value under %s/%s/%s", issue, material, size)
				}
				if bucket.MinPrice > bucket.MaxPrice || bucket.MinDays > bucket.MaxDays {
					return nil, fmt.Errorf("price rules: min exceeds max under %s/%s/%s", issue, material, size)
				}
			}
		}
	}

	return table, nil
}

// Materials returns the sorted material names defined for an issue.
func (t RuleTable) Materials(issue string) []string {
	materials := make([]string, 0, len(t[issue]))
	for material := range t[issue] {
		materials = append(materials, material)
	}
	sort.Strings(materials)
	return materials
}

// Resolve finds the size buckets for an issue and material. An exact material
// match wins; otherwise the wildcard bucket applies. When neither exists the
// lookup fails rather than silently picking an arbitrary bucket.
func (t RuleTable) Resolve(issue, material string) (map[string]Bucket, bool) {
	materials, ok := t[issue]
	if !ok {
		return nil, false
	}
	if sizes, ok := materials[material]; ok {
		return sizes, true
	}
	if sizes, ok := materials[MaterialAny]; ok {
		return sizes, true
	}
	return nil, false
}
