package entity

import "github.com/google/uuid"

// IsValidReference reports whether s is a well-formed identifier for a
// Contact, Lead or User reference. Existence of the referent is not checked.
func IsValidReference(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// ParseReferences converts raw identifiers into UUIDs, stopping at the first
// malformed element. The returned index points at the offending element.
func ParseReferences(raw []string) ([]uuid.UUID, int, bool) {
	ids := make([]uuid.UUID, 0, len(raw))
	for i, s := range raw {
		if !IsValidReference(s) {
			return nil, i, false
		}
		ids = append(ids, uuid.MustParse(s))
	}
	return ids, -1, true
}
