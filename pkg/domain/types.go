package domain

// State is an atomic label from a machine's finite state set.
// Identity is value equality.
type State string

// Symbol is an atomic token from a machine's input alphabet.
type Symbol string

// Sequence splits an input string into one-rune symbols.
// This is the conventional form sequences arrive in from the CLI
// (e.g. "abba" -> [a b b a]).
func Sequence(s string) []Symbol {
	symbols := make([]Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}
