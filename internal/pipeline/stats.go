package pipeline

// RunStats tracks aggregate counters across one repair run. Run returns it by
// value and resets nothing globally, so repeated invocations in-process (a
// test harness running many fixture trees) each start from zero.
type RunStats struct {
	Total        int   // Files matched by discovery.
	Current      int   // Files visited so far (1-based while running).
	Repaired     int   // Files re-encoded from a masquerading format.
	Transparent  int   // Files whose background was rewritten to alpha.
	Skipped      int   // Recognized but not repairable, or unknown contents.
	Failed       int   // Per-file errors; never escalated to the caller.
	BytesWritten int64 // Canonical bytes written back to disk.
}

// Changed reports whether the run mutated anything on disk (or would have,
// under dry-run).
func (s *RunStats) Changed() bool {
	return s.Repaired > 0 || s.Transparent > 0
}
