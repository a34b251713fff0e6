// Package donation implements the extraction pipeline for participant data
// donations: per-participant JSON exports from YouTube and TikTok plus the
// donation questionnaires, bundled into a single zip archive.
//
// # Pipeline
//
// The pipeline is three stages, composed by Processor.Run:
//
//  1. Classify: every archive entry name is matched against the platform
//     registry (DefaultSpecs) in order; the first matching spec wins and
//     yields a FileMetadata with the participant id and, for questionnaires,
//     a timestamp. Unmatched entries are skipped.
//
//  2. Reconcile: the classified list is corrected against a participant
//     replacement table. Corrective donations are filed under the id they
//     replace, superseded donations are dropped, and every decision is
//     logged with masked ids.
//
//  3. Extract: each remaining entry's body is decoded by its platform's
//     decoder into named row collections, which are accumulated into one
//     Table per data type with id and timestamp columns attached.
//
// The pipeline is synchronous and whole-batch: it either returns the full
// set of tables or an error. Decoding failures are treated as data-integrity
// faults and abort the run.
//
// # Export
//
// WriteCSV and WriteSQLite persist a result set for downstream analysis.
// They are conveniences for the CLI; the pipeline itself only returns tables
// in memory.
package donation
