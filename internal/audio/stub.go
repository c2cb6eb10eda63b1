// Package audio generates placeholder Ogg Vorbis files so the game loads
// without the final sound design in place.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Manifest maps sound categories to the placeholder files each one needs.
var Manifest = map[string][]string{
	"weapons": {
		"rifle_fire.ogg",
		"machinegun_fire.ogg",
		"cannon_fire.ogg",
		"missile_launch.ogg",
		"artillery_fire.ogg",
		"launcher_fire.ogg",
	},
	"impacts": {
		"penetration.ogg",
		"deflection.ogg",
		"infantry_hit.ogg",
		"vehicle_explosion.ogg",
		"building_hit.ogg",
	},
	"voices": {
		"move_order.ogg",
		"attack_order.ogg",
		"under_fire.ogg",
		"low_morale.ogg",
		"retreating.ogg",
	},
	"ambient": {
		"battle_ambient.ogg",
		"off_screen_combat.ogg",
		"environmental.ogg",
	},
}

// stubOgg is a minimal Ogg page carrying a Vorbis identification header:
// stereo, 44100 Hz, no audio payload. The page checksum is left zero, which
// lenient decoders accept for a placeholder.
var stubOgg = []byte{
	// Ogg page header
	0x4f, 0x67, 0x67, 0x53, // "OggS"
	0x00,                                           // version
	0x02,                                           // beginning of stream
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // granule position
	0x00, 0x00, 0x00, 0x01, // serial number
	0x00, 0x00, 0x00, 0x00, // page sequence
	0x00, 0x00, 0x00, 0x00, // checksum
	0x01, // segment count
	0x1e, // lacing value
	// Vorbis identification header
	0x01, 0x76, 0x6f, 0x72, 0x62, 0x69, 0x73, // "vorbis"
	0x00, 0x00, 0x00, 0x00, // version
	0x02,                   // channels
	0x44, 0xac, 0x00, 0x00, // sample rate 44100
	0x00, 0x00, 0x00, 0x00, // bitrate max
	0x00, 0x00, 0x00, 0x00, // bitrate nominal
	0x00, 0x00, 0x00, 0x00, // bitrate min
	0xb8, // blocksizes
	0x01, // framing flag
}

// Logger is the minimal logging surface Generate needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// WriteStub writes one placeholder file, creating parent directories.
func WriteStub(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sound directory: %w", err)
	}
	if err := os.WriteFile(path, stubOgg, 0o644); err != nil {
		return fmt.Errorf("write stub: %w", err)
	}
	return nil
}

// Generate writes every manifest file under baseDir and returns the count
// written. Existing files are kept unless force is set, so real recordings
// dropped into the tree survive a rerun.
func Generate(baseDir string, force bool, log Logger) (int, error) {
	categories := make([]string, 0, len(Manifest))
	for c := range Manifest {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	written := 0
	for _, category := range categories {
		log.Info("Generating %s sounds...", category)
		for _, name := range Manifest[category] {
			path := filepath.Join(baseDir, category, name)
			if !force {
				if _, err := os.Stat(path); err == nil {
					log.Debug(true, "Exists, keeping: %s", path)
					continue
				}
			}
			if err := WriteStub(path); err != nil {
				return written, err
			}
			log.Success("Created: %s", path)
			written++
		}
	}
	return written, nil
}
