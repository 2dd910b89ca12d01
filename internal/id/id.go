package id

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const monthFormat = "2006-01"

// NewGUID returns a GnuCash-style guid: 32 lowercase hex digits, no dashes.
func NewGUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidGUID reports whether s looks like a guid, with or without dashes.
func ValidGUID(s string) bool {
	if len(s) != 32 && len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// FormatMonth returns a month key like "2025-01".
func FormatMonth(t time.Time) string {
	return t.Format(monthFormat)
}
