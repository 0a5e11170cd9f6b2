// Package resilient applies per-item functions over a batch so that one bad
// item never aborts the batch.
//
// Each call is wrapped into an Outcome. Failed items are dropped (Map) or
// given a fallback answer (Filter), and, when verbose logging is on, reported
// through internal/logger:
//
//	[WARN] invalid item '<item>'
//	[WARN] <violation message>            (one per violation, ordered by path)
//	[WARN] skipping item
//
// or, for any other error or a recovered panic:
//
//	[WARN] an error was encountered while processing item '<item>'
//	[WARN] <error message>
//	[WARN] skipping item
//
// Exclusion of failed items does not depend on verbosity.
package resilient
