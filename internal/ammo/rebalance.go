// Package ammo rebalances unit weapon definitions: every weapon's max_ammo
// is normalized to one of two tiers chosen by keyword classification of the
// weapon id.
package ammo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Ammo tiers. Heavy ordnance gets the small pool, everything else the
// standard one.
const (
	HeavyAmmo    = 10
	StandardAmmo = 20
)

// heavyKeywords mark a weapon id as heavy ordnance. Matching is substring
// based on the lowercased id.
var heavyKeywords = []string{
	"cannon", "missile", "rocket", "bomb", "mortar",
	"howitzer", "fusion", "launcher", "railgun",
}

// IsHeavy classifies a weapon id. Rotary weapons are rapid-fire and stay on
// the standard tier even when a keyword matches, unless the id is also a
// missile system.
func IsHeavy(weaponID string) bool {
	id := strings.ToLower(weaponID)
	for _, kw := range heavyKeywords {
		if strings.Contains(id, kw) {
			if strings.Contains(id, "rotary") && !strings.Contains(id, "missile") {
				return false
			}
			return true
		}
	}
	return false
}

// Change records one applied rebalance for logging.
type Change struct {
	WeaponID string
	From     int
	To       int
}

// Rebalance rewrites max_ammo for every weapon in a unit definition and
// returns the updated document plus the list of changes. When nothing needs
// changing the input bytes are returned untouched so callers can skip the
// write. Unknown fields at every level are preserved verbatim.
func Rebalance(data []byte) ([]byte, []Change, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse unit definition: %w", err)
	}

	rawWeapons, ok := doc["weapons"]
	if !ok {
		return data, nil, nil
	}

	var weapons []map[string]json.RawMessage
	if err := json.Unmarshal(rawWeapons, &weapons); err != nil {
		return nil, nil, fmt.Errorf("parse weapons array: %w", err)
	}

	var changes []Change
	for _, weapon := range weapons {
		var id string
		if err := json.Unmarshal(weapon["weapon_id"], &id); err != nil {
			return nil, nil, fmt.Errorf("parse weapon_id: %w", err)
		}

		// Missing max_ammo counts as unlimited and always gets rewritten.
		current := 999
		if raw, ok := weapon["max_ammo"]; ok {
			if err := json.Unmarshal(raw, &current); err != nil {
				return nil, nil, fmt.Errorf("parse max_ammo for %s: %w", id, err)
			}
		}

		target := StandardAmmo
		if IsHeavy(id) {
			target = HeavyAmmo
		}
		if current == target {
			continue
		}

		enc, err := json.Marshal(target)
		if err != nil {
			return nil, nil, err
		}
		weapon["max_ammo"] = enc
		changes = append(changes, Change{WeaponID: id, From: current, To: target})
	}

	if len(changes) == 0 {
		return data, nil, nil
	}

	enc, err := json.Marshal(weapons)
	if err != nil {
		return nil, nil, err
	}
	doc["weapons"] = enc

	var buf bytes.Buffer
	e := json.NewEncoder(&buf)
	e.SetIndent("", "    ")
	if err := e.Encode(doc); err != nil {
		return nil, nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), changes, nil
}
