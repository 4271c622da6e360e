// Package repository implements the append-only JSONL stores for customer
// interactions. Each append opens the file, writes one line, syncs and closes,
// relying on O_APPEND atomicity for short writes so concurrent sessions never
// interleave records.
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Stream file names under the logs directory.
const (
	leadsFile           = "leads.jsonl"
	feedbackFile        = "feedback.jsonl"
	serviceFeedbackFile = "service_feedback.jsonl"
)

// LeadEntry records a customer ready to buy or book a repair.
type LeadEntry struct {
	ID      string    `json:"id"`
	TS      time.Time `json:"ts"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Message string    `json:"message"`
}

// FeedbackEntry records a question the assistant could not resolve.
type FeedbackEntry struct {
	ID       string    `json:"id"`
	TS       time.Time `json:"ts"`
	Question string    `json:"question"`
}

// ServiceFeedbackEntry records post-service feedback.
type ServiceFeedbackEntry struct {
	ID           string    `json:"id"`
	TS           time.Time `json:"ts"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ServiceType  string    `json:"service_type"`
	Satisfaction string    `json:"satisfaction"`
	Comments     string    `json:"comments"`
}

// Store writes interaction entries to per-stream JSONL files.
type Store struct {
	dir string
}

// NewStore creates the store and ensures the logs directory exists.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// AppendLead durably appends one lead entry.
func (s *Store) AppendLead(entry LeadEntry) error {
	return s.append(leadsFile, entry)
}

// AppendFeedback durably appends one feedback entry.
func (s *Store) AppendFeedback(entry FeedbackEntry) error {
	return s.append(feedbackFile, entry)
}

// AppendServiceFeedback durably appends one service feedback entry.
func (s *Store) AppendServiceFeedback(entry ServiceFeedbackEntry) error {
	return s.append(serviceFeedbackFile, entry)
}

// append writes a single newline-delimited JSON record and syncs before
// returning, so an acknowledged entry survives an immediate crash.
func (s *Store) append(name string, entry any) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal %s entry: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}

	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	return f.Close()
}
