// Package ports defines the boundary interfaces of the weft core.
//
// The engine consumes machine definitions through RowSource (row-oriented
// text sources such as CSV) and persists them through DefinitionStore. Both
// sides are adapters; the core never performs I/O itself.
package ports
