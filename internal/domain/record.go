// Package domain provides the domain layer for comments and profiles.
// It contains the read-only value types fetched from the remote source.
package domain

import "fmt"

// Record is a single comment as published by the remote source.
// Records are immutable once fetched; identity is ID.
type Record struct {
	GroupID        int    `json:"postId" yaml:"groupId"`
	ID             int    `json:"id" yaml:"id"`
	DisplayName    string `json:"name" yaml:"displayName"`
	ContactAddress string `json:"email" yaml:"contactAddress"`
	BodyText       string `json:"body" yaml:"bodyText"`
}

// String returns a short human readable form of the record.
func (r Record) String() string {
	return fmt.Sprintf("#%d (group %d) %s <%s>", r.ID, r.GroupID, r.DisplayName, r.ContactAddress)
}

// Field identifies a record attribute that can be used as a sort key.
type Field string

const (
	FieldGroupID        Field = "groupId"
	FieldDisplayName    Field = "displayName"
	FieldContactAddress Field = "contactAddress"
)

// SortableFields lists the sortable fields in column order.
var SortableFields = []Field{FieldGroupID, FieldDisplayName, FieldContactAddress}

// IsValid checks if the field is one of the sortable fields.
func (f Field) IsValid() bool {
	switch f {
	case FieldGroupID, FieldDisplayName, FieldContactAddress:
		return true
	default:
		return false
	}
}

// String returns the string representation of the field.
func (f Field) String() string {
	return string(f)
}

// WireName returns the key used for the field by the remote source and the
// persisted view state.
func (f Field) WireName() string {
	switch f {
	case FieldGroupID:
		return "postId"
	case FieldDisplayName:
		return "name"
	case FieldContactAddress:
		return "email"
	default:
		return string(f)
	}
}

// ParseField parses a field from either its Go name or its wire name.
func ParseField(s string) (Field, error) {
	switch s {
	case "groupId", "postId", "group":
		return FieldGroupID, nil
	case "displayName", "name":
		return FieldDisplayName, nil
	case "contactAddress", "email":
		return FieldContactAddress, nil
	default:
		return "", fmt.Errorf("invalid sort field: %s", s)
	}
}

// FieldFromWire converts a persisted wire name back to a Field. Unknown names
// are kept verbatim.
func FieldFromWire(s string) Field {
	switch s {
	case "postId":
		return FieldGroupID
	case "name":
		return FieldDisplayName
	case "email":
		return FieldContactAddress
	default:
		return Field(s)
	}
}
