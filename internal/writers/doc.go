// Package writers turns annotations and record summaries into serialized
// outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV columns, JSON/JSONL).
//   - Domain packages stay presentation-free.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
