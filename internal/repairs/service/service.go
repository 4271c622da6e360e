// Package service computes tiered repair estimates from the pricing rule table.
package service

import (
	"fmt"
	"math"
	"strings"

	"fixfurn_backend/internal/repairs/repository"
	"fixfurn_backend/internal/repairs/transport"
	"fixfurn_backend/platform/logger"
)

// Service provides business logic for repair estimation.
type Service struct {
	rules repository.RuleTable
	log   *logger.Logger
}

// New creates a new repairs service.
func New(rules repository.RuleTable, log *logger.Logger) *Service {
	return &Service{rules: rules, log: log}
}

// Estimate resolves the rule bucket for (issue, material, size) and derives
// the budget, standard and rush tiers. Material defaults to the wildcard
// bucket, size to medium. Prices are rounded half away from zero.
func (s *Service) Estimate(issue, material, sizeCategory string) transport.EstimateResult {
	issue = strings.ToLower(strings.TrimSpace(issue))
	material = strings.ToLower(strings.TrimSpace(material))
	if material == "" {
		material = repository.MaterialAny
	}
	size := strings.ToLower(strings.TrimSpace(sizeCategory))
	if size == "" {
		size = repository.SizeMedium
	}

	if _, ok := s.rules[issue]; !ok {
		return transport.EstimateResult{
			Msg: fmt.Sprintf("No pricing rule for issue '%s'.", issue),
		}
	}

	sizes, ok := s.rules.Resolve(issue, material)
	if !ok {
		return transport.EstimateResult{
			Msg: fmt.Sprintf(
				"No pricing rule for material '%s' on issue '%s'. Known materials: %s.",
				material, issue, strings.Join(s.rules.Materials(issue), ", "),
			),
		}
	}

	bucket, ok := sizes[size]
	if !ok {
		return transport.EstimateResult{
			Msg: fmt.Sprintf("Unsupported size_category '%s'. Use small/medium/large.", size),
		}
	}

	return transport.EstimateResult{
		OK:       true,
		Issue:    issue,
		Material: material,
		Size:     size,
		Estimate: buildTiers(bucket),
	}
}

func buildTiers(b repository.Bucket) *transport.Estimate {
	return &transport.Estimate{
		Budget: transport.Tier{
			Price: roundPrice(b.MinPrice * 0.9),
			Days:  [2]int{b.MinDays, max(b.MinDays, b.MinDays+1)},
		},
		Standard: transport.Tier{
			Price: roundPrice((b.MinPrice + b.MaxPrice) / 2),
			Days:  [2]int{b.MinDays, b.MaxDays},
		},
		Rush: transport.Tier{
			Price: roundPrice(b.MaxPrice * 1.25),
			Days:  [2]int{max(1, b.MinDays-1), max(1, b.MaxDays-1)},
		},
	}
}

// roundPrice rounds half away from zero, so 187.5 becomes 188.
func roundPrice(v float64) int {
	return int(math.Round(v))
}
