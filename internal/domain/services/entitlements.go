package services

import (
	"fmt"
	"regexp"
	"strings"
)

// APSEnvironment is the entitlement value written for new declarations.
const APSEnvironment = "development"

// apsEntry is inserted as the first entry of the root dictionary.
const apsEntry = "\t<key>aps-environment</key>\n\t<string>" + APSEnvironment + "</string>\n"

var (
	apsKeyPattern       = regexp.MustCompile(`<key>\s*aps-environment\s*</key>`)
	selfClosingDictExpr = regexp.MustCompile(`<dict\s*/>`)
)

// DefaultEntitlements returns a minimal entitlements document declaring
// only aps-environment.
func DefaultEntitlements() string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
` + apsEntry + `</dict>
</plist>`
}

// HasAPSEnvironment reports whether the document declares the
// aps-environment key, regardless of surrounding whitespace.
func HasAPSEnvironment(content string) bool {
	return apsKeyPattern.MatchString(content)
}

// InsertAPSEnvironment adds the aps-environment declaration to an
// entitlements document.
//
// A document whose dictionaries all close explicitly gets the entry right
// before the last </dict>, which belongs to the root dictionary. A document
// with no closing tag but an empty self-closing root <dict/> has it
// expanded into an open/close pair holding the entry.
func InsertAPSEnvironment(content string) (string, error) {
	if idx := strings.LastIndex(content, dictCloseTag); idx != -1 {
		return insertAt(content, idx, apsEntry), nil
	}

	if loc := selfClosingDictExpr.FindStringIndex(content); loc != nil {
		return replaceSpan(content, loc[0], loc[1], "<dict>\n"+apsEntry+dictCloseTag), nil
	}

	return "", fmt.Errorf("entitlements: no root dictionary: %w", ErrLandmarkNotFound)
}
