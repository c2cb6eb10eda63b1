package pipeline

import (
	"fmt"
	"os"
)

// SidecarPath returns the companion import-metadata path for an asset:
// the asset path plus the fixed suffix.
func SidecarPath(asset, suffix string) string {
	return asset + suffix
}

// removeSidecar deletes the asset's companion file if present and reports
// whether one was removed. The sidecar is owned by the downstream import
// system; this tool only ever deletes it, never creates it, and only after
// the asset's bytes changed in this run.
func removeSidecar(asset, suffix string) (bool, error) {
	sc := SidecarPath(asset, suffix)
	if _, err := os.Stat(sc); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat sidecar %q: %w", sc, err)
	}
	if err := os.Remove(sc); err != nil {
		return false, fmt.Errorf("remove sidecar %q: %w", sc, err)
	}
	return true, nil
}
