// Package pipeline orchestrates asset discovery, per-file repair and
// normalization, sidecar invalidation, and batch summary reporting.
//
// Types:
//   - RunStats (Total, Current, Repaired, Transparent, Skipped, Failed,
//     BytesWritten)
//
// Functions:
//   - Run(ctx, cfg, log) → (RunStats, error)
//     Batch runner: discover → for each file: read → sniff → repair
//     masquerading JPEG → classify background → rewrite alpha → invalidate
//     sidecar. Per-file errors are logged and skipped; only the walk itself
//     failing is returned as an error.
//   - Discover(root, pattern) → []string
//     Walk directory, match slash-relative paths case-insensitively against
//     a doublestar pattern, sort deterministically.
package pipeline
