// Package pipeline runs the engine's per-window analysis across workers.
//
// Distinct windows are independent and only read the shared sequence, so they
// are fanned out to an errgroup and written back into fixed slots. The
// assembled report is identical to a sequential engine.Run.
package pipeline
