// Package cli parses command line arguments against a small declaration of
// what the program accepts. Argument names are matched literally, dashes
// included, so callers declare "--out" and pass "--out". Violations are not
// survivable: a missing value, a duplicate, or an absent required argument
// logs a critical line and stops the process.
package cli

import (
	"os"
	"slices"

	"github.com/stormyhs/fox/log"
)

// exit stops the process after a declaration violation. Tests swap it out
// to observe the code instead of dying.
var exit = os.Exit

type parameter struct {
	long     string
	hasValue bool
}

// Parser declares the CLI arguments a program may take.
type Parser struct {
	required []parameter
	optional []parameter
}

// NewParser returns an empty declaration.
func NewParser() *Parser {
	return &Parser{}
}

// Required declares an argument that must be present. Required arguments
// always carry a value.
func (p *Parser) Required(long string) *Parser {
	p.required = append(p.required, parameter{long: long, hasValue: true})
	return p
}

// Optional declares an argument that may be present. With hasValue false
// the argument is a bare flag.
func (p *Parser) Optional(long string, hasValue bool) *Parser {
	p.optional = append(p.optional, parameter{long: long, hasValue: hasValue})
	return p
}

// Parse reads the process arguments against the declaration.
func (p *Parser) Parse() *Arguments {
	return p.parse(os.Args[1:])
}

func (p *Parser) parse(cliArgs []string) *Arguments {
	combined := append(slices.Clone(p.required), p.optional...)

	var (
		args  []argument
		found []string
	)
	for i := 0; i < len(cliArgs); i++ {
		cliArg := cliArgs[i]
		log.SDebug("Parsing %s", cliArg)
		for _, param := range combined {
			if param.long != cliArg {
				continue
			}
			if param.hasValue && i+1 >= len(cliArgs) {
				log.SCritical("No value provided for argument `%s`", cliArg)
				exit(1)
				return nil
			}
			if slices.Contains(found, cliArg) {
				log.SCritical("Argument `%s` provided twice.", cliArg)
				exit(1)
				return nil
			}
			found = append(found, cliArg)
			if param.hasValue {
				args = append(args, argument{name: cliArg, value: cliArgs[i+1], hasValue: true})
				i++
			} else {
				args = append(args, argument{name: cliArg})
			}
			break
		}
	}

	for _, req := range p.required {
		if !slices.Contains(found, req.long) {
			log.SCritical("Missing required argument `%s`", req.long)
			exit(1)
			return nil
		}
	}

	return &Arguments{arguments: args}
}

type argument struct {
	name     string
	value    string
	hasValue bool
}

// Arguments reads values and presence of parsed CLI arguments.
type Arguments struct {
	arguments []argument
}

// Value returns the value of an argument, or false when it was not given.
// Asking for the value of a bare flag is a programming error and exits.
func (a *Arguments) Value(name string) (string, bool) {
	for _, arg := range a.arguments {
		if arg.name != name {
			continue
		}
		if !arg.hasValue {
			log.SCritical("Tried to get the value of argument `%s`, but it is a flag. Did you mean to use HasFlag?", name)
			exit(1)
			return "", false
		}
		return arg.value, true
	}
	return "", false
}

// HasFlag reports whether a bare flag was given. Asking about an argument
// declared with a value is a programming error and exits.
func (a *Arguments) HasFlag(name string) bool {
	for _, arg := range a.arguments {
		if arg.name != name {
			continue
		}
		if arg.hasValue {
			log.SCritical("Tried to check for flag `%s`, but it has a value. Did you mean to use Value?", name)
			exit(1)
			return false
		}
		return true
	}
	return false
}
