package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// AccountInfo is the per-document extraction result applied to every
// transaction parsed from that document. It is not persisted.
type AccountInfo struct {
	Number   string
	Currency string
}

// FileResult is the structured outcome of processing a single PDF.
// Failures are captured here instead of being propagated, so a batch of
// files can partially succeed.
type FileResult struct {
	File         string
	Success      bool
	Error        string
	BankID       string
	Transactions []Transaction
}

// ProcessingSummary aggregates the results of a processing run.
type ProcessingSummary struct {
	RunID             string
	StartedAt         time.Time
	TotalFiles        int
	SuccessfulFiles   int
	FailedFiles       int
	TotalTransactions int
	BanksDetected     map[string]bool
	Errors            []string
}

// NewProcessingSummary creates an empty summary with a generated run ID.
func NewProcessingSummary(totalFiles int) *ProcessingSummary {
	return &ProcessingSummary{
		RunID:         uuid.New().String(),
		StartedAt:     time.Now(),
		TotalFiles:    totalFiles,
		BanksDetected: make(map[string]bool),
	}
}

// Add folds one file result into the summary counters.
func (s *ProcessingSummary) Add(r FileResult) {
	if r.Success {
		s.SuccessfulFiles++
		s.TotalTransactions += len(r.Transactions)
		for _, tx := range r.Transactions {
			if tx.Bank != "" {
				s.BanksDetected[tx.Bank] = true
			}
		}
	} else {
		s.FailedFiles++
		if r.Error != "" {
			s.Errors = append(s.Errors, r.File+": "+r.Error)
		}
	}
}

// BankNames returns the sorted list of detected bank display names.
func (s *ProcessingSummary) BankNames() []string {
	names := make([]string, 0, len(s.BanksDetected))
	for name := range s.BanksDetected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
