package domain

// Document is the serializable form of a machine definition, used by the
// YAML loader, the Redis store and the HTTP adapter. It carries no
// invariants of its own; Definition re-validates everything, so a Document
// decoded from untrusted bytes cannot smuggle an inconsistent machine past
// the constructor.
type Document struct {
	States    []string `json:"states" yaml:"states" mapstructure:"states"`
	Symbols   []string `json:"symbols" yaml:"symbols" mapstructure:"symbols"`
	Initial   string   `json:"initial" yaml:"initial" mapstructure:"initial"`
	Terminals []string `json:"terminals" yaml:"terminals" mapstructure:"terminals"`
	Rules     []Rule   `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// Definition validates the document and builds the immutable Definition.
func (doc Document) Definition() (*Definition, error) {
	states := make([]State, len(doc.States))
	for i, s := range doc.States {
		states[i] = State(s)
	}
	symbols := make([]Symbol, len(doc.Symbols))
	for i, s := range doc.Symbols {
		symbols[i] = Symbol(s)
	}
	terminals := make([]State, len(doc.Terminals))
	for i, s := range doc.Terminals {
		terminals[i] = State(s)
	}
	return NewDefinition(states, symbols, State(doc.Initial), terminals, doc.Rules)
}
