/*
Package weft is a deterministic finite automaton (DFA) engine. It loads a
machine definition (states, alphabet, initial state, terminal states,
transition function) from a structured source, executes input symbol
sequences against it, and reports every transition plus a final acceptance
verdict.

# Concept

A machine definition is tabular: row 0 declares the states, row 1 the
alphabet, row 2 the initial state, row 3 the terminal states, and every
following row one from,symbol,to transition triple. Definitions are validated
up front (every referenced state must be declared) and immutable afterwards,
so one definition can back any number of concurrently running machines.

Runs degrade gracefully: an undeclared symbol or an undefined transition
stops consumption, but the result still carries the partial trace, the state
that was reached and the acceptance verdict, with the triggering error
retained alongside.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/weft"
		"github.com/aretw0/weft/pkg/adapters/csv"
		"github.com/aretw0/weft/pkg/domain"
	)

	func main() {
		eng, err := weft.New(csv.NewFileSource("machine.csv"))
		if err != nil {
			log.Fatal(err)
		}

		result := eng.Run(domain.Sequence("abba"))
		for _, rec := range result.Trace {
			fmt.Printf("%s -%s-> %s\n", rec.From, rec.Symbol, rec.To)
		}
		fmt.Println("terminated:", result.Terminated)
	}

Definition sources (CSV, YAML, in-memory rows) and stores (memory, Redis)
live under pkg/adapters; the HTTP adapter exposes an engine as a JSON API.
*/
package weft
