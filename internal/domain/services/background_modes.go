package services

import (
	"fmt"
	"regexp"
	"strings"
)

// RemoteNotificationMode is the background mode that lets a push wake the app.
const RemoteNotificationMode = "remote-notification"

const (
	modeEntry        = "\n\t\t<string>" + RemoteNotificationMode + "</string>"
	backgroundModes  = "\t<key>UIBackgroundModes</key>\n\t<array>\n\t\t<string>" + RemoteNotificationMode + "</string>\n\t</array>\n"
	filledModesArray = "<array>" + modeEntry + "\n\t</array>"
)

var (
	backgroundModesKey   = regexp.MustCompile(`<key>\s*UIBackgroundModes\s*</key>`)
	remoteNotificationRe = regexp.MustCompile(`<string>\s*remote-notification\s*</string>`)
	modesArrayOpen       = regexp.MustCompile(`<key>\s*UIBackgroundModes\s*</key>\s*<array>`)
	modesArrayEmpty      = regexp.MustCompile(`<key>\s*UIBackgroundModes\s*</key>\s*(<array\s*/>)`)
)

// HasRemoteNotificationMode reports whether the document declares the
// UIBackgroundModes key and the remote-notification value anywhere.
func HasRemoteNotificationMode(content string) bool {
	return backgroundModesKey.MatchString(content) && remoteNotificationRe.MatchString(content)
}

// HasBackgroundModesKey reports whether UIBackgroundModes is declared at all.
func HasBackgroundModesKey(content string) bool {
	return backgroundModesKey.MatchString(content)
}

// InsertRemoteNotificationMode adds remote-notification to an Info.plist.
//
// When UIBackgroundModes exists, the value becomes the first entry of the
// array that follows the first occurrence of the key. Otherwise a new key
// and array are inserted before the root dictionary's closing tag: the last
// </dict> preceding the last </plist>.
func InsertRemoteNotificationMode(content string) (string, error) {
	if HasBackgroundModesKey(content) {
		return insertIntoModesArray(content)
	}

	plistEnd := strings.LastIndex(content, plistCloseTag)
	dictEnd := lastDictCloseBefore(content, plistEnd)
	if dictEnd == -1 {
		return "", fmt.Errorf("background modes: no root dictionary: %w", ErrLandmarkNotFound)
	}

	return insertAt(content, dictEnd, backgroundModes), nil
}

func insertIntoModesArray(content string) (string, error) {
	if loc := modesArrayOpen.FindStringIndex(content); loc != nil {
		return insertAt(content, loc[1], modeEntry), nil
	}

	if m := modesArrayEmpty.FindStringSubmatchIndex(content); m != nil {
		return replaceSpan(content, m[2], m[3], filledModesArray), nil
	}

	return "", fmt.Errorf("background modes: UIBackgroundModes is not followed by an array: %w", ErrLandmarkNotFound)
}
