package types

import "github.com/google/uuid"

// guidLength is the canonical hyphenated textual form: 8-4-4-4-12 hex digits.
const guidLength = 36

// IsGUID reports whether s is a canonical hyphenated GUID.
// uuid.Parse alone is too permissive for our wire contract: it also accepts
// urn-prefixed, braced and unhyphenated forms, so the length is pinned first.
func IsGUID(s string) bool {
	if len(s) != guidLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
