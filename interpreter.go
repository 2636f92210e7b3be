// interpreter.go: tree-walking evaluator and variable environment.
//
// Evaluation is a single recursive pass over the immutable expression tree.
// The environment is the one long-lived piece of state: a flat, case-sensitive
// name→value map created once per interpreter and mutated in place by every
// successful declaration or assignment. It is never copied or snapshotted, and
// entries live until the process exits.
//
// The interpreter is single-threaded by contract: one line is scanned, parsed
// and evaluated to completion before the next is accepted. A host serving
// multiple sessions must give each its own Interpreter and serialize calls
// within a session.
package aether

import "fmt"

// EvalErrorKind discriminates evaluation failures.
type EvalErrorKind int

const (
	// UndefinedVariable: a reference named a binding absent from the
	// environment.
	UndefinedVariable EvalErrorKind = iota
	// AlreadyDeclared: a ":=" declaration named a binding already present.
	AlreadyDeclared
)

// EvalError reports an evaluation failure against the environment.
type EvalError struct {
	Kind EvalErrorKind
	Name string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case UndefinedVariable:
		return fmt.Sprintf("undefined variable: %s", e.Name)
	case AlreadyDeclared:
		return fmt.Sprintf("variable %q already declared (use = to update)", e.Name)
	}
	return fmt.Sprintf("eval error for %s", e.Name)
}

// Env is the mutable variable environment: a single flat frame, since Aether
// has no nested scopes. Names are case-sensitive. A name enters the table via
// exactly one Declare (or a creating Assign) and is never removed.
type Env struct {
	table map[string]float64
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{table: make(map[string]float64)}
}

// Declare binds name to v. It is an error if name is already bound.
func (e *Env) Declare(name string, v float64) error {
	if _, ok := e.table[name]; ok {
		return &EvalError{Kind: AlreadyDeclared, Name: name}
	}
	e.table[name] = v
	return nil
}

// Assign binds name to v unconditionally. Assigning a name that was never
// declared creates it; this asymmetry with Declare is intentional, inherited
// behavior (see DESIGN.md).
func (e *Env) Assign(name string, v float64) {
	e.table[name] = v
}

// Get retrieves the binding for name.
func (e *Env) Get(name string) (float64, error) {
	v, ok := e.table[name]
	if !ok {
		return 0, &EvalError{Kind: UndefinedVariable, Name: name}
	}
	return v, nil
}

// Len reports the number of live bindings.
func (e *Env) Len() int { return len(e.table) }

// Eval walks node against env and returns the numeric result. Only DeclStmt
// and AssignStmt mutate env, and only after their value expression evaluated
// cleanly; a failing line therefore leaves env untouched. Binary operands are
// evaluated left before right. Division follows IEEE-754: dividing by zero
// yields ±Inf or NaN rather than an error.
func Eval(node Node, env *Env) (float64, error) {
	switch n := node.(type) {
	case NumberLit:
		return n.Value, nil
	case VarRef:
		return env.Get(n.Name)
	case BinaryExpr:
		left, err := Eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right, env)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case Add:
			return left + right, nil
		case Sub:
			return left - right, nil
		case Mul:
			return left * right, nil
		case Div:
			return left / right, nil
		}
		return 0, fmt.Errorf("unknown operator %v", n.Op)
	case DeclStmt:
		v, err := Eval(n.Value, env)
		if err != nil {
			return 0, err
		}
		if err := env.Declare(n.Name, v); err != nil {
			return 0, err
		}
		return v, nil
	case AssignStmt:
		v, err := Eval(n.Value, env)
		if err != nil {
			return 0, err
		}
		env.Assign(n.Name, v)
		return v, nil
	}
	return 0, fmt.Errorf("unknown node %T", node)
}

// Interpreter owns the persistent environment for one session.
type Interpreter struct {
	Global *Env
}

// New returns an interpreter with a fresh, empty environment.
func New() *Interpreter {
	return &Interpreter{Global: NewEnv()}
}

// EvalPersistentSource runs the full pipeline — tokenize, parse, evaluate —
// for one line of source against the persistent Global environment. Bindings
// made by earlier successful lines remain visible; a failing line leaves
// Global unchanged and the caller may keep feeding lines.
func (ip *Interpreter) EvalPersistentSource(src string) (float64, error) {
	node, err := ParseSource(src)
	if err != nil {
		return 0, err
	}
	return Eval(node, ip.Global)
}
