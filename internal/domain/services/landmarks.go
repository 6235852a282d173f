// Package services contains the pure domain logic of the setup tool:
// structural landmark insertion into property-list documents.
//
// Documents are never decoded and re-encoded. Every edit is a single
// insertion at a well-known marker (a closing tag or a known key), so the
// rest of the document is preserved byte for byte.
package services

import (
	"errors"
	"strings"
)

// ErrLandmarkNotFound is returned when the marker an insertion is anchored
// on does not occur in the document.
var ErrLandmarkNotFound = errors.New("structural landmark not found")

const (
	dictCloseTag  = "</dict>"
	plistCloseTag = "</plist>"
)

// insertAt returns content with fragment spliced in at offset.
func insertAt(content string, offset int, fragment string) string {
	var b strings.Builder
	b.Grow(len(content) + len(fragment))
	b.WriteString(content[:offset])
	b.WriteString(fragment)
	b.WriteString(content[offset:])
	return b.String()
}

// replaceSpan returns content with [start, end) replaced by fragment.
func replaceSpan(content string, start, end int, fragment string) string {
	var b strings.Builder
	b.Grow(len(content) - (end - start) + len(fragment))
	b.WriteString(content[:start])
	b.WriteString(fragment)
	b.WriteString(content[end:])
	return b.String()
}

// lastDictCloseBefore returns the offset of the last </dict> that starts
// before limit, or -1.
func lastDictCloseBefore(content string, limit int) int {
	if limit < 0 {
		return -1
	}
	if limit > len(content) {
		limit = len(content)
	}
	return strings.LastIndex(content[:limit], dictCloseTag)
}
