// Package probe classifies asset files by content rather than extension.
// A single magic-byte check per file replaces the extension trust that put
// the asset tree into its broken state in the first place.
//
// Types:
//   - Encoding: PNG, JPEG, plus recognized-but-not-repaired GIF, BMP, WebP.
//
// Functions:
//   - Sniff(data) → Encoding
//     Pure classification from a fixed-size byte prefix; first match wins,
//     JPEG checked before PNG.
package probe
