package domain

import "time"

// Document is a knowledge-base entry owned by the relational store. A copy
// may exist in the external semantic index under the same id, but that copy
// is best-effort and never reconciled.
type Document struct {
	ID         int64
	Department Department
	Title      string
	Content    string
	CreatedAt  time.Time
}
