// Package service records customer interactions to the append-only stores.
package service

import (
	"time"

	"fixfurn_backend/internal/interactions/repository"
	"fixfurn_backend/internal/interactions/transport"
	"fixfurn_backend/platform/apperr"
	"fixfurn_backend/platform/logger"

	"github.com/google/uuid"
)

// Acknowledgement messages relayed back to the customer by the model.
const (
	leadAck            = "Thanks! We'll follow up soon."
	feedbackAck        = "Noted. We'll improve our answers."
	serviceFeedbackAck = "Thanks for the feedback! We'll share it with the team."
)

// Service provides business logic for interaction logging.
type Service struct {
	store *repository.Store
	log   *logger.Logger
	now   func() time.Time
}

// New creates a new interactions service.
func New(store *repository.Store, log *logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// RecordLead appends a lead entry and returns the fixed acknowledgement.
func (s *Service) RecordLead(req transport.LeadRequest) (transport.Ack, error) {
	entry := repository.LeadEntry{
		ID:      uuid.NewString(),
		TS:      s.now(),
		Email:   req.Email,
		Name:    req.Name,
		Message: req.Message,
	}
	if err := s.store.AppendLead(entry); err != nil {
		return transport.Ack{}, apperr.Wrap(apperr.KindInternal, "could not record your details", err).WithOp("interactions.RecordLead")
	}

	s.log.Info("lead recorded", "id", entry.ID, "email", entry.Email)
	return transport.Ack{OK: true, Msg: leadAck}, nil
}

// RecordFeedback appends an unresolved-question entry.
func (s *Service) RecordFeedback(req transport.FeedbackRequest) (transport.Ack, error) {
	entry := repository.FeedbackEntry{
		ID:       uuid.NewString(),
		TS:       s.now(),
		Question: req.Question,
	}
	if err := s.store.AppendFeedback(entry); err != nil {
		return transport.Ack{}, apperr.Wrap(apperr.KindInternal, "could not record the question", err).WithOp("interactions.RecordFeedback")
	}

	s.log.Info("feedback recorded", "id", entry.ID)
	return transport.Ack{OK: true, Msg: feedbackAck}, nil
}

// RecordServiceFeedback appends a post-service feedback entry.
func (s *Service) RecordServiceFeedback(req transport.ServiceFeedbackRequest) (transport.Ack, error) {
	entry := repository.ServiceFeedbackEntry{
		ID:           uuid.NewString(),
		TS:           s.now(),
		Email:        req.Email,
		Name:         req.Name,
		ServiceType:  req.ServiceType,
		Satisfaction: req.Satisfaction,
		Comments:     req.Comments,
	}
	if err := s.store.AppendServiceFeedback(entry); err != nil {
		return transport.Ack{}, apperr.Wrap(apperr.KindInternal, "could not record the feedback", err).WithOp("interactions.RecordServiceFeedback")
	}

	s.log.Info("service feedback recorded", "id", entry.ID, "service_type", entry.ServiceType)
	return transport.Ack{OK: true, Msg: serviceFeedbackAck}, nil
}
