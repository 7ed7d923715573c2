package ports

// RowSource yields the ordered rows of string fields a machine definition is
// compiled from. Conventionally this is a parsed comma-separated file where
// row 0 declares the states, row 1 the alphabet, row 2 the initial state,
// row 3 the terminal states and every following row a from,symbol,to triple.
//
// A RowSource performs the I/O; shape and membership validation belong to
// the compiler.
type RowSource interface {
	Rows() ([][]string, error)
}
