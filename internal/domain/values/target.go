package values

import "fmt"

// Target identifies which native capability a patch operation declares.
type Target string

const (
	// TargetEntitlements is the push-notification service entitlement (aps-environment)
	TargetEntitlements Target = "entitlements"
	// TargetBackgroundModes is the remote-notification background mode in Info.plist
	TargetBackgroundModes Target = "background-modes"
)

// Title returns a human-readable name for reports.
func (t Target) Title() string {
	switch t {
	case TargetEntitlements:
		return "Push notification entitlement"
	case TargetBackgroundModes:
		return "Remote notification background mode"
	default:
		return string(t)
	}
}

// Declaration returns the key the target declares in its document.
func (t Target) Declaration() string {
	switch t {
	case TargetEntitlements:
		return "aps-environment"
	case TargetBackgroundModes:
		return "UIBackgroundModes"
	default:
		return ""
	}
}

// Validate returns an error if the target is unknown
func (t Target) Validate() error {
	switch t {
	case TargetEntitlements, TargetBackgroundModes:
		return nil
	default:
		return fmt.Errorf("invalid target: %s", t)
	}
}
