package workspace

import "strings"

// Mode selects between provisioning a new workspace and binding to an existing one.
// It is decided exactly once per resolution; there is no hybrid mode.
type Mode string

const (
	ModeNew      Mode = "new"
	ModeExisting Mode = "existing"
)

// ResolveMode returns [ModeExisting] iff existingRef is non-empty after trimming
// whitespace, otherwise [ModeNew].
func ResolveMode(existingRef string) Mode {
	if strings.TrimSpace(existingRef) != "" {
		return ModeExisting
	}

	return ModeNew
}
