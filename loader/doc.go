// Package loader is the I/O boundary of statewords: it turns an adjacency
// table and a word list into a *core.Graph and a *vocab.Vocabulary.
//
// Sources are resolved by Open:
//
//   - "embedded"              the bundled US state adjacency table
//   - "http://…", "https://…" fetched with GET under the caller's context
//   - anything else           a local file path
//
// The adjacency table is CSV with a header row naming at least a Code and a
// Neighbors column (case-insensitive, any position). Neighbors is a
// comma-separated list of codes. A missing or empty Neighbors field, or a
// missing-value sentinel such as NaN, means "no recorded neighbors": the row is
// skipped and logged at debug level, so its code (AK and HI in the bundled
// table) is not a known code unless another row lists it as a neighbor.
//
// The word list is one word per line; lines are trimmed and lowercased, and
// the vocabulary's length filter applies.
package loader
