// Package almanac orchestrates the daily synthesis: it runs every domain
// calculator for a profile and date, feeds their outputs to the analyzers,
// and assembles the immutable DailyAlignment record.
//
// Generation is deterministic: the same profile and date always produce the
// same alignment. Ranges fan out across a bounded worker pool once the
// per-profile caches are populated.
package almanac
