package models

import "time"

// Document holds the store-managed identity and timestamps shared by every record.
type Document struct {
	ID        string    `db:"id" json:"_id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Meta exposes the embedded document so generic code can stamp identity and timestamps.
func (d *Document) Meta() *Document {
	return d
}

// Record is satisfied by pointers to entity structs embedding Document.
type Record[T any] interface {
	*T
	Meta() *Document
}

// Messages maps "<Field>.<rule>" to the client-facing validation message.
// Rules are validator tags (required, max, gt, oneof, email, ...) plus
// "type" for a wrong JSON type and "integer" for fractional numbers.
type Messages map[string]string
