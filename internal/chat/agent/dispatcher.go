package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	catalogtransport "fixfurn_backend/internal/catalog/transport"
	interactionstransport "fixfurn_backend/internal/interactions/transport"
	repairstransport "fixfurn_backend/internal/repairs/transport"
	"fixfurn_backend/platform/apperr"
	"fixfurn_backend/platform/validator"
)

// ProductFinder is the slice of the catalog service the dispatcher needs.
type ProductFinder interface {
	Lookup(query string) catalogtransport.LookupResult
}

// RepairEstimator is the slice of the repairs service the dispatcher needs.
type RepairEstimator interface {
	Estimate(issue, material, sizeCategory string) repairstransport.EstimateResult
}

// InteractionRecorder is the slice of the interactions service the dispatcher needs.
type InteractionRecorder interface {
	RecordLead(req interactionstransport.LeadRequest) (interactionstransport.Ack, error)
	RecordFeedback(req interactionstransport.FeedbackRequest) (interactionstransport.Ack, error)
	RecordServiceFeedback(req interactionstransport.ServiceFeedbackRequest) (interactionstransport.Ack, error)
}

// lookupInput is the argument shape of the lookup_product tool.
type lookupInput struct {
	Query string `json:"query" validate:"required"`
}

// Dispatcher maps a model-requested tool name and argument map onto one of the
// domain services. Every outcome, including argument-shape mismatches and
// unknown tool names, is converted into a uniform {ok, msg, ...} payload; a
// dispatch never propagates a fault back into the conversation loop.
type Dispatcher struct {
	catalog      ProductFinder
	repairs      RepairEstimator
	interactions InteractionRecorder
	val          *validator.Validator
}

// NewDispatcher creates a dispatcher over the three domain services.
func NewDispatcher(catalog ProductFinder, repairs RepairEstimator, interactions InteractionRecorder, val *validator.Validator) *Dispatcher {
	return &Dispatcher{
		catalog:      catalog,
		repairs:      repairs,
		interactions: interactions,
		val:          val,
	}
}

// Dispatch invokes the named tool with the given plain argument map.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) map[string]any {
	switch name {
	case ToolLookupProduct:
		var in lookupInput
		if msg, ok := d.decode(name, args, &in); !ok {
			return failure(msg)
		}
		return toPayload(d.catalog.Lookup(in.Query))

	case ToolEstimateRepair:
		var in repairstransport.EstimateRequest
		if msg, ok := d.decode(name, args, &in); !ok {
			return failure(msg)
		}
		return toPayload(d.repairs.Estimate(in.Issue, in.Material, in.SizeCategory))

	case ToolRecordCustomerInterest:
		var in interactionstransport.LeadRequest
		if msg, ok := d.decode(name, args, &in); !ok {
			return failure(msg)
		}
		return ackPayload(d.interactions.RecordLead(in))

	case ToolRecordFeedback:
		var in interactionstransport.FeedbackRequest
		if msg, ok := d.decode(name, args, &in); !ok {
			return failure(msg)
		}
		return ackPayload(d.interactions.RecordFeedback(in))

	case ToolRecordServiceFeedback:
		var in interactionstransport.ServiceFeedbackRequest
		if msg, ok := d.decode(name, args, &in); !ok {
			return failure(msg)
		}
		return ackPayload(d.interactions.RecordServiceFeedback(in))

	default:
		return failure(fmt.Sprintf("Unknown tool '%s'.", name))
	}
}

// decode strictly maps the argument map onto the tool's input struct: unknown
// fields are rejected and required fields are enforced via validation tags.
func (d *Dispatcher) decode(name string, args map[string]any, dst any) (string, bool) {
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Sprintf("Invalid arguments for %s: %v", name, err), false
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Sprintf("Invalid arguments for %s: %v", name, err), false
	}

	if err := d.val.Struct(dst); err != nil {
		return fmt.Sprintf("Invalid arguments for %s: %v", name, err), false
	}
	return "", true
}

func failure(msg string) map[string]any {
	return map[string]any{"ok": false, "msg": msg}
}

// toPayload flattens a typed result into the map shape the model consumes.
func toPayload(result any) map[string]any {
	data, err := json.Marshal(result)
	if err != nil {
		return failure("internal error encoding tool result")
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return failure("internal error encoding tool result")
	}
	return payload
}

// ackPayload converts an interaction write into a tool payload, folding write
// errors into an ordinary failure result the model can relay.
func ackPayload(ack interactionstransport.Ack, err error) map[string]any {
	if err != nil {
		if ae, ok := err.(*apperr.Error); ok {
			return failure(ae.Message)
		}
		return failure(err.Error())
	}
	return toPayload(ack)
}
