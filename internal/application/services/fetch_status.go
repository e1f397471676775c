package services

import (
	"sync"
	"time"
)

// FetchStatus records list-fetch failures that were absorbed into empty
// results, so callers can still tell "no data" from "fetch failed"
type FetchStatus struct {
	mu       sync.RWMutex
	failures map[string]FetchFailure
}

// FetchFailure describes the most recent absorbed failure for a resource
type FetchFailure struct {
	Resource string    `json:"resource"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// NewFetchStatus creates an empty recorder
func NewFetchStatus() *FetchStatus {
	return &FetchStatus{failures: make(map[string]FetchFailure)}
}

// RecordFailure notes that a fetch for the resource failed
func (f *FetchStatus) RecordFailure(resource string, err error) {
	f.mu.Lock()
	f.failures[resource] = FetchFailure{
		Resource: resource,
		Message:  err.Error(),
		At:       time.Now(),
	}
	f.mu.Unlock()
}

// ClearFailure notes that a fetch for the resource succeeded
func (f *FetchStatus) ClearFailure(resource string) {
	f.mu.Lock()
	delete(f.failures, resource)
	f.mu.Unlock()
}

// LastFailure returns the most recent absorbed failure for the resource
func (f *FetchStatus) LastFailure(resource string) (FetchFailure, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	failure, ok := f.failures[resource]
	return failure, ok
}

// Failures lists all resources currently marked degraded
func (f *FetchStatus) Failures() []FetchFailure {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]FetchFailure, 0, len(f.failures))
	for _, failure := range f.failures {
		out = append(out, failure)
	}
	return out
}
