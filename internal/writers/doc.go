// Package writers turns a finished report into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (text blocks, TSV, JSON/JSONL).
//   • Engine stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   • Nothing reaches the destination until the whole report rendered cleanly.
package writers
