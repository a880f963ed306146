// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// api.go - public entry-point and the draft table constructors write into.
//
// Design contract:
//   - One orchestrator: BuildContext(bopts, cons...). Resolves cfg, runs cons
//     in order, then builds the core.Context once.
//   - Constructors append blocks; they never touch earlier blocks.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     contexts.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/galois/core"
)

// Constructor appends one block of objects and attributes to the draft.
// Constructors validate their parameters before writing anything and return
// sentinel errors; they never panic.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft is the table under construction. Names are assigned from the
// configured schemes using global indices, so blocks never collide.
type Draft struct {
	objects    []string
	attributes []string
	incidence  [][]bool
}

// BuildContext resolves bopts, applies every constructor in order and returns
// the resulting Context.
//
// Errors: constructor sentinels wrapped with "BuildContext"; ErrConstructFailed
// for a nil constructor or when core.New rejects the table (for example a
// naming scheme that repeats names).
func BuildContext(bopts []BuilderOption, cons ...Constructor) (*core.Context, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildContext: nil constructor at index %d", i)
		}
		if err := fn(d, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildContext")
		}
	}

	c, err := core.New(d.objects, d.attributes, d.incidence)
	if err != nil {
		return nil, errors.WithSecondaryError(errors.Wrap(ErrConstructFailed, "BuildContext"), err)
	}

	return c, nil
}

// MustBuild is BuildContext for fixtures known to be valid; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Context {
	c, err := BuildContext(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return c
}

// block appends m fresh attributes and returns the index of the first one.
// Existing objects get false cells for them.
func (d *Draft) block(cfg builderConfig, m int) int {
	first := len(d.attributes)
	for j := 0; j < m; j++ {
		d.attributes = append(d.attributes, cfg.attributeID(first+j))
	}
	for i := range d.incidence {
		d.incidence[i] = append(d.incidence[i], make([]bool, m)...)
	}

	return first
}

// object appends one object whose cells within the current block
// [first, first+m) are given by has.
func (d *Draft) object(cfg builderConfig, first, m int, has func(j int) bool) {
	row := make([]bool, len(d.attributes))
	for j := 0; j < m; j++ {
		row[first+j] = has(j)
	}
	d.objects = append(d.objects, cfg.objectID(len(d.objects)))
	d.incidence = append(d.incidence, row)
}
