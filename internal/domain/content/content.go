// Package content models the editable site copy: key/value rows that
// designated page regions pull their text from.
package content

import (
	"context"
	"time"
)

// Entry is one editable region's text.
type Entry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository provides lookup and admin mutation of site content.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Upsert(ctx context.Context, key, value string) error
}

// Map indexes entries by key for template substitution.
func Map(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}
