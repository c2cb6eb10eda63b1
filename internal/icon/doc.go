// Package icon implements the pure image stages of the repair pipeline:
// decoding and canonical PNG encoding, the background classifier, and the
// alpha compositor. Each stage works on in-memory bytes or pixels; the
// pipeline package joins them to files so every stage stays unit-testable
// without fixtures on disk.
package icon
