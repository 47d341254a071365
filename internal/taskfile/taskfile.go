// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package taskfile loads keyed build descriptions from YAML and evaluates
// them with the selective algebra.
//
// A file names integer inputs and tasks. Each task is an expression over
// keys; a key names an input or another task:
//
//	inputs:
//	  release: 1
//	  debug_size: 3
//	  opt_size: 5
//	tasks:
//	  size:
//	    if:
//	      test: release
//	      then: opt_size
//	      else: debug_size
//	  total:
//	    sum: [size, 10]
//
// A scalar string is shorthand for {key: name}; a scalar integer is
// shorthand for {const: n}.
package taskfile

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/selective"
)

var (
	// ErrUnknownKey is returned for a key that names neither an input nor a task.
	ErrUnknownKey = errors.New("taskfile: unknown key")
	// ErrCycle is returned when a task can reach itself through its dependencies.
	ErrCycle = errors.New("taskfile: dependency cycle")
	// ErrInvalidExpr is returned for an expression that is not exactly one form.
	ErrInvalidExpr = errors.New("taskfile: invalid expression")
)

// File is a parsed task file.
type File struct {
	Inputs map[string]int  `yaml:"inputs"`
	Tasks  map[string]Expr `yaml:"tasks"`
}

// Expr is a task expression. Exactly one field is set.
type Expr struct {
	// Key reads the value of an input or task.
	Key string `yaml:"key,omitempty"`
	// Const is a literal.
	Const *int `yaml:"const,omitempty"`
	// Sum adds its operands, which are evaluated independently.
	Sum []Expr `yaml:"sum,omitempty"`
	// If evaluates Then when Test is non-zero and Else otherwise.
	If *If `yaml:"if,omitempty"`
	// Any is 1 if some operand is non-zero, stopping at the first one.
	Any []Expr `yaml:"any,omitempty"`
	// All is 1 if every operand is non-zero, stopping at the first zero.
	All []Expr `yaml:"all,omitempty"`
}

// If is a conditional expression.
type If struct {
	Test Expr `yaml:"test"`
	Then Expr `yaml:"then"`
	Else Expr `yaml:"else"`
}

type form int

const (
	formInvalid form = iota
	formKey
	formConst
	formSum
	formIf
	formAny
	formAll
)

func (e Expr) form() form {
	n, f := 0, formInvalid
	set := func(ok bool, g form) {
		if ok {
			n++
			f = g
		}
	}
	set(e.Key != "", formKey)
	set(e.Const != nil, formConst)
	set(e.Sum != nil, formSum)
	set(e.If != nil, formIf)
	set(e.Any != nil, formAny)
	set(e.All != nil, formAll)
	if n != 1 {
		return formInvalid
	}
	return f
}

var exprFields = map[string]bool{"key": true, "const": true, "sum": true, "if": true, "any": true, "all": true}

var ifFields = map[string]bool{"test": true, "then": true, "else": true}

// UnmarshalYAML decodes the long form and the scalar shorthands.
func (e *Expr) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if n, err := strconv.Atoi(node.Value); err == nil {
			*e = Expr{Const: &n}
			return nil
		}
		if node.Value == "" {
			return fmt.Errorf("%w: line %d: empty key", ErrInvalidExpr, node.Line)
		}
		*e = Expr{Key: node.Value}
		return nil
	case yaml.MappingNode:
		if err := checkFields(node, exprFields); err != nil {
			return err
		}
		type plain Expr
		return node.Decode((*plain)(e))
	}
	return fmt.Errorf("%w: line %d: expected a scalar or a mapping", ErrInvalidExpr, node.Line)
}

// UnmarshalYAML rejects unknown fields.
func (c *If) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: if must be a mapping", ErrInvalidExpr, node.Line)
	}
	if err := checkFields(node, ifFields); err != nil {
		return err
	}
	type plain If
	return node.Decode((*plain)(c))
}

// checkFields applies KnownFields to nested nodes, which node.Decode does
// not inherit from the outer decoder.
func checkFields(node *yaml.Node, known map[string]bool) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		if !known[k.Value] {
			return fmt.Errorf("%w: line %d: unknown field %q", ErrInvalidExpr, k.Line, k.Value)
		}
	}
	return nil
}

// Parse decodes and validates a task file.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("taskfile: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the task file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate reports every malformed expression, unknown key, and dependency
// cycle in f. Problems are accumulated; tasks are checked in name order.
func (f *File) Validate() error {
	var result *multierror.Error
	for _, name := range slices.Sorted(maps.Keys(f.Inputs)) {
		if _, ok := f.Tasks[name]; ok {
			result = multierror.Append(result, fmt.Errorf("%w: %q is both an input and a task", ErrInvalidExpr, name))
		}
	}
	names := slices.Sorted(maps.Keys(f.Tasks))
	valid := true
	for _, name := range names {
		if err := checkExpr(name, f.Tasks[name]); err != nil {
			result = multierror.Append(result, err)
			valid = false
		}
	}
	if !valid {
		return result.ErrorOrNil()
	}
	for _, name := range names {
		deps := f.possible(name)
		for _, k := range deps {
			if !f.has(k) {
				result = multierror.Append(result, fmt.Errorf("%w: task %q reads %q", ErrUnknownKey, name, k))
			}
		}
	}
	if err := f.findCycle(names); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func checkExpr(task string, e Expr) error {
	switch e.form() {
	case formInvalid:
		return fmt.Errorf("%w: task %q: expression must set exactly one of key, const, sum, if, any, all", ErrInvalidExpr, task)
	case formIf:
		for _, sub := range []Expr{e.If.Test, e.If.Then, e.If.Else} {
			if err := checkExpr(task, sub); err != nil {
				return err
			}
		}
	case formSum, formAny, formAll:
		for _, sub := range slices.Concat(e.Sum, e.Any, e.All) {
			if err := checkExpr(task, sub); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *File) has(k string) bool {
	if _, ok := f.Inputs[k]; ok {
		return true
	}
	_, ok := f.Tasks[k]
	return ok
}

// Dependencies returns every key task could read, through either branch of
// every conditional, in traversal order with duplicates preserved.
func (f *File) Dependencies(task string) ([]string, error) {
	if _, ok := f.Tasks[task]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, task)
	}
	return f.possible(task), nil
}

// possible is Dependencies for a name known to be in f.Tasks.
func (f *File) possible(task string) []string {
	return selective.Dependencies(Compile[selective.OverF[string]](f.Tasks[task]))
}

// DefiniteDependencies returns the keys task reads on every evaluation.
func (f *File) DefiniteDependencies(task string) ([]string, error) {
	e, ok := f.Tasks[task]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, task)
	}
	return selective.DefiniteDependencies(Compile[selective.UnderF[string]](e)), nil
}

// findCycle reports the first cycle among task-to-task edges, visiting
// tasks in the order given.
func (f *File) findCycle(names []string) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(names))
	var path []string
	var visit func(string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			start := slices.Index(path, name)
			cycle := append(slices.Clone(path[start:]), name)
			return fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
		case done:
			return nil
		}
		state[name] = visiting
		path = append(path, name)
		deps := f.possible(name)
		for _, k := range deps {
			if _, ok := f.Tasks[k]; !ok {
				continue
			}
			if err := visit(k); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		return nil
	}
	for _, name := range names {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
