// Package domain holds ColorPal's persisted records and the rules that
// belong to them rather than to any one service.
package domain

import "time"

// Record carries the identity and timestamps shared by every stored entity.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InitTimestamps sets CreatedAt and UpdatedAt to now.
func (r *Record) InitTimestamps() {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
}

// Touch bumps UpdatedAt.
func (r *Record) Touch() {
	r.UpdatedAt = time.Now()
}
