package agent

import (
	"context"
	"strings"
	"testing"

	catalogtransport "fixfurn_backend/internal/catalog/transport"
	interactionstransport "fixfurn_backend/internal/interactions/transport"
	repairstransport "fixfurn_backend/internal/repairs/transport"
	"fixfurn_backend/platform/apperr"
	"fixfurn_backend/platform/validator"
)

type stubCatalog struct {
	lastQuery string
	result    catalogtransport.LookupResult
}

func (s *stubCatalog) Lookup(query string) catalogtransport.LookupResult {
	s.lastQuery = query
	return s.result
}

type stubRepairs struct {
	lastIssue, lastMaterial, lastSize string
	result                            repairstransport.EstimateResult
}

func (s *stubRepairs) Estimate(issue, material, sizeCategory string) repairstransport.EstimateResult {
	s.lastIssue, s.lastMaterial, s.lastSize = issue, material, sizeCategory
	return s.result
}

type stubInteractions struct {
	leads           []interactionstransport.LeadRequest
	feedback        []interactionstransport.FeedbackRequest
	serviceFeedback []interactionstransport.ServiceFeedbackRequest
	err             error
}

func (s *stubInteractions) RecordLead(req interactionstransport.LeadRequest) (interactionstransport.Ack, error) {
	s.leads = append(s.leads, req)
	if s.err != nil {
		return interactionstransport.Ack{}, s.err
	}
	return interactionstransport.Ack{OK: true, Msg: "Thanks! We'll follow up soon."}, nil
}

func (s *stubInteractions) RecordFeedback(req interactionstransport.FeedbackRequest) (interactionstransport.Ack, error) {
	s.feedback = append(s.feedback, req)
	return interactionstransport.Ack{OK: true, Msg: "Noted. We'll improve our answers."}, nil
}

func (s *stubInteractions) RecordServiceFeedback(req interactionstransport.ServiceFeedbackRequest) (interactionstransport.Ack, error) {
	s.serviceFeedback = append(s.serviceFeedback, req)
	return interactionstransport.Ack{OK: true, Msg: "Thanks for the feedback! We'll share it with the team."}, nil
}

func newTestDispatcher() (*Dispatcher, *stubCatalog, *stubRepairs, *stubInteractions) {
	catalog := &stubCatalog{result: catalogtransport.LookupResult{OK: true, Query: "sofa"}}
	repairs := &stubRepairs{result: repairstransport.EstimateResult{OK: true, Issue: "wobble"}}
	interactions := &stubInteractions{}
	return NewDispatcher(catalog, repairs, interactions, validator.New()), catalog, repairs, interactions
}

func TestDispatchUnknownTool(t *testing.T) {
	d, _, _, _ := newTestDispatcher()

	payload := d.Dispatch(context.Background(), "fly_to_moon", map[string]any{})
	if ok, _ := payload["ok"].(bool); ok {
		t.Fatal("expected failure payload")
	}
	if payload["msg"] != "Unknown tool 'fly_to_moon'." {
		t.Fatalf("unexpected message: %v", payload["msg"])
	}
}

func TestDispatchLookupProduct(t *testing.T) {
	d, catalog, _, _ := newTestDispatcher()

	payload := d.Dispatch(context.Background(), ToolLookupProduct, map[string]any{"query": "sofa"})
	if ok, _ := payload["ok"].(bool); !ok {
		t.Fatalf("expected success, got %v", payload)
	}
	if catalog.lastQuery != "sofa" {
		t.Fatalf("expected query forwarded, got %q", catalog.lastQuery)
	}
	if payload["query"] != "sofa" {
		t.Fatalf("expected flattened result fields, got %v", payload)
	}
}

func TestDispatchRejectsMissingRequiredArgument(t *testing.T) {
	d, catalog, _, _ := newTestDispatcher()

	payload := d.Dispatch(context.Background(), ToolLookupProduct, map[string]any{})
	if ok, _ := payload["ok"].(bool); ok {
		t.Fatal("expected failure for missing query")
	}
	msg, _ := payload["msg"].(string)
	if !strings.HasPrefix(msg, "Invalid arguments for lookup_product:") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if catalog.lastQuery != "" {
		t.Fatal("expected service untouched on invalid arguments")
	}
}

func TestDispatchRejectsUnknownArgument(t *testing.T) {
	d, _, repairs, _ := newTestDispatcher()

	payload := d.Dispatch(context.Background(), ToolEstimateRepair, map[string]any{
		"issue":    "wobble",
		"severity": "extreme",
	})
	if ok, _ := payload["ok"].(bool); ok {
		t.Fatal("expected failure for unknown argument")
	}
	if repairs.lastIssue != "" {
		t.Fatal("expected service untouched on invalid arguments")
	}
}

func TestDispatchEstimateRepairForwardsArguments(t *testing.T) {
	d, _, repairs, _ := newTestDispatcher()

	payload := d.Dispatch(context.Background(), ToolEstimateRepair, map[string]any{
		"issue":         "wobble",
		"material":      "wood",
		"size_category": "large",
	})
	if ok, _ := payload["ok"].(bool); !ok {
		t.Fatalf("expected success, got %v", payload)
	}
	if repairs.lastIssue != "wobble" || repairs.lastMaterial != "wood" || repairs.lastSize != "large" {
		t.Fatalf("arguments not forwarded: %q %q %q", repairs.lastIssue, repairs.lastMaterial, repairs.lastSize)
	}
}

func TestDispatchRecordCustomerInterest(t *testing.T) {
	d, _, _, interactions := newTestDispatcher()

	payload := d.Dispatch(context.Background(), ToolRecordCustomerInterest, map[string]any{
		"email":   "ann@example.test",
		"name":    "Ann",
		"message": "oak table",
	})
	if ok, _ := payload["ok"].(bool); !ok {
		t.Fatalf("expected success, got %v", payload)
	}
	if len(interactions.leads) != 1 || interactions.leads[0].Email != "ann@example.test" {
		t.Fatalf("unexpected recorded leads: %+v", interactions.leads)
	}
}

func TestDispatchFoldsWriteErrorsIntoFailure(t *testing.T) {
	d, _, _, interactions := newTestDispatcher()
	interactions.err = apperr.Internal("could not record your details")

	payload := d.Dispatch(context.Background(), ToolRecordCustomerInterest, map[string]any{
		"email":   "ann@example.test",
		"name":    "Ann",
		"message": "oak table",
	})
	if ok, _ := payload["ok"].(bool); ok {
		t.Fatal("expected failure payload on write error")
	}
	if payload["msg"] != "could not record your details" {
		t.Fatalf("unexpected message: %v", payload["msg"])
	}
}

func TestDispatchServiceFeedbackCommentsOptional(t *testing.T) {
	d, _, _, interactions := newTestDispatcher()

	payload := d.Dispatch(context.Background(), ToolRecordServiceFeedback, map[string]any{
		"email":        "bob@example.test",
		"name":         "Bob",
		"service_type": "repair",
		"satisfaction": "happy",
	})
	if ok, _ := payload["ok"].(bool); !ok {
		t.Fatalf("expected success without comments, got %v", payload)
	}
	if len(interactions.serviceFeedback) != 1 || interactions.serviceFeedback[0].Comments != "" {
		t.Fatalf("unexpected recorded feedback: %+v", interactions.serviceFeedback)
	}
}
