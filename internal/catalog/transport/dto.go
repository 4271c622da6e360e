package transport

import "fixfurn_backend/internal/catalog/repository"

// SearchRequest is the query-string binding for the catalog search endpoint.
type SearchRequest struct {
	Query string `form:"query" validate:"required,max=200"`
}

// LookupResult is the uniform envelope returned by product lookup, both over
// HTTP and as a tool result for the model. Field names match the persisted
// tool contract: catalog_match supersedes catalog_results, catalog_category is
// independent, ikea_results is capped at five entries.
type LookupResult struct {
	OK              bool                       `json:"ok"`
	Msg             string                     `json:"msg,omitempty"`
	Query           string                     `json:"query,omitempty"`
	CatalogMatch    *repository.CatalogItem    `json:"catalog_match,omitempty"`
	CatalogResults  []repository.CatalogItem   `json:"catalog_results,omitempty"`
	CatalogCategory []repository.CatalogItem   `json:"catalog_category,omitempty"`
	IkeaResults     []repository.ReferenceItem `json:"ikea_results,omitempty"`
}
