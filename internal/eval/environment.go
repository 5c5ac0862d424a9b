package eval

import "github.com/plus-lang/plus/internal/bigint"

// Environment is the flat, insertion-ordered variable store spec §4.8
// describes: PLUS has no scoping, so one Environment serves an entire run.
type Environment struct {
	values map[string]bigint.Int
	order  []string
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]bigint.Int)}
}

// Declare introduces name with value zero. Declaring an already-declared
// name is an error (spec §4.8, Declaration).
func (e *Environment) Declare(name string) error {
	if _, ok := e.values[name]; ok {
		return &RedeclaredVariableError{Name: name}
	}
	e.values[name] = bigint.Zero()
	e.order = append(e.order, name)
	return nil
}

// Get returns name's current value, or an error if it was never declared.
func (e *Environment) Get(name string) (bigint.Int, error) {
	v, ok := e.values[name]
	if !ok {
		return bigint.Int{}, &UndeclaredVariableError{Name: name}
	}
	return v, nil
}

// Set overwrites name's value. The caller must have already confirmed name
// is declared (Get or Declare); Set itself does not check.
func (e *Environment) Set(name string, v bigint.Int) {
	e.values[name] = v
}

// Names returns declared variable names in declaration order, the order
// WithVarDump renders them in.
func (e *Environment) Names() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// UndeclaredVariableError reports a reference to a name that was never
// declared.
type UndeclaredVariableError struct{ Name string }

func (e *UndeclaredVariableError) Error() string { return "undeclared variable: " + e.Name }

// RedeclaredVariableError reports a second 'number' declaration of the
// same name.
type RedeclaredVariableError struct{ Name string }

func (e *RedeclaredVariableError) Error() string { return "variable already declared: " + e.Name }
