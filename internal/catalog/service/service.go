// Package service implements product lookup across the curated catalog and the
// IKEA reference dataset.
package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"fixfurn_backend/internal/catalog/repository"
	"fixfurn_backend/internal/catalog/transport"
	"fixfurn_backend/platform/logger"
)

const referenceResultLimit = 5

var nonWord = regexp.MustCompile(`\W+`)

// Service provides business logic for catalog lookup.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Lookup searches the curated catalog by SKU, name, color and category, and
// the reference dataset by relevance score. An exact SKU match is returned as
// the single best match and suppresses the name-result list so the same item
// is not reported twice.
func (s *Service) Lookup(query string) transport.LookupResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return transport.LookupResult{
			Msg: "Please provide a product keyword, SKU, or IKEA item ID.",
		}
	}

	qLower := strings.ToLower(q)
	result := transport.LookupResult{OK: true, Query: q}

	curated := s.repo.CuratedItems()
	for i := range curated {
		if strings.ToLower(curated[i].SKU) == qLower {
			result.CatalogMatch = &curated[i]
			break
		}
	}

	var nameHits []repository.CatalogItem
	for _, item := range curated {
		if matchesNameOrColor(item, qLower) {
			nameHits = append(nameHits, item)
		}
	}
	if len(nameHits) > 0 && result.CatalogMatch == nil {
		result.CatalogResults = nameHits
	}

	for _, item := range curated {
		if strings.ToLower(item.Category) == qLower {
			result.CatalogCategory = append(result.CatalogCategory, item)
		}
	}

	result.IkeaResults = s.searchReference(qLower, referenceResultLimit)

	if result.CatalogMatch == nil && len(result.CatalogResults) == 0 &&
		len(result.CatalogCategory) == 0 && len(result.IkeaResults) == 0 {
		return transport.LookupResult{
			Msg: fmt.Sprintf("No products found for '%s'.", q),
		}
	}

	return result
}

func matchesNameOrColor(item repository.CatalogItem, qLower string) bool {
	if strings.Contains(strings.ToLower(item.Name), qLower) {
		return true
	}
	for _, opt := range item.ColorOptions {
		if strings.Contains(strings.ToLower(opt), qLower) {
			return true
		}
	}
	return false
}

type scoredItem struct {
	score int
	item  repository.ReferenceItem
}

// searchReference scores every reference item against the query: +10 for an
// exact item_id match, +3 when the whole query appears in the searchable text,
// +1 per query word appearing in the searchable text. Zero-score items are
// excluded, duplicate ids keep only their highest-scoring instance, and the
// survivors are ordered by score descending then name ascending.
func (s *Service) searchReference(qLower string, limit int) []repository.ReferenceItem {
	items := s.repo.ReferenceItems()
	if len(items) == 0 || qLower == "" {
		return nil
	}

	var words []string
	for _, w := range nonWord.Split(qLower, -1) {
		if w != "" {
			words = append(words, w)
		}
	}

	best := make(map[string]scoredItem)
	for _, item := range items {
		score := 0
		if qLower == strings.ToLower(item.ItemID) {
			score += 10
		}
		if strings.Contains(item.SearchText(), qLower) {
			score += 3
		}
		for _, w := range words {
			if strings.Contains(item.SearchText(), w) {
				score++
			}
		}
		if score == 0 {
			continue
		}
		if existing, ok := best[item.ItemID]; !ok || score > existing.score {
			best[item.ItemID] = scoredItem{score: score, item: item}
		}
	}

	if len(best) == 0 {
		return nil
	}

	ranked := make([]scoredItem, 0, len(best))
	for _, entry := range best {
		ranked = append(ranked, entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].item.Name < ranked[j].item.Name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]repository.ReferenceItem, len(ranked))
	for i, entry := range ranked {
		out[i] = entry.item
	}
	return out
}
