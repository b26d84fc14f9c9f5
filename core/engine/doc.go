// Package engine slides a fixed-width window over one sequence, expands each
// distinct window into its complement set and reports where those complements
// occur. It never imports the application packages; keep it domain-only.
//
// External outputs must not depend on the shapes here; use pkg/api for the
// stable wire types.
package engine
