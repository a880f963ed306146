package exploration

import (
	"context"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/implication"
	"github.com/katalvlaran/galois/nextclosure"
)

// Explore runs attribute exploration of c against oracle. It returns the
// confirmed implications (the canonical basis of the final context) and the
// final context: a clone of c enlarged by every accepted counterexample.
// c itself is not modified.
//
// Errors:
//   - ErrNilOracle if oracle is nil.
//   - ctx.Err() when ctx is done before a question is asked.
//   - errors returned by the oracle, wrapped.
//   - ErrInconsistentCounterexample, ErrTooManyCounterexamples,
//     core.ErrNotFound (unknown attribute) and core.ErrDuplicateName
//     (object name taken) for rejected counterexamples.
func Explore(ctx context.Context, c *core.Context, oracle Oracle, opts ...Option) (*implication.Basis, *core.Context, error) {
	if oracle == nil {
		return nil, nil, ErrNilOracle
	}
	cfg := newConfig(opts...)
	r := &run{
		ctx:    ctx,
		oracle: oracle,
		cfg:    cfg,
		work:   c.Clone(),
	}
	r.basis = implication.ForContext(r.work)

	if err := r.loop(); err != nil {
		return nil, nil, err
	}
	cfg.logger.Info("exploration finished",
		zap.Int("implications", r.basis.Len()),
		zap.Int("objects", r.work.ObjectCount()),
		zap.Int("questions", cfg.stats.Questions),
		zap.Int("counterexamples", cfg.stats.Counterexamples))

	return r.basis, r.work, nil
}

// run holds the mutable state of one exploration.
type run struct {
	ctx    context.Context
	oracle Oracle
	cfg    config
	work   *core.Context
	basis  *implication.Basis
}

func (r *run) loop() error {
	n := r.work.AttributeCount()
	full := core.FullSet(n)

	a := core.NewSet(n)
	for !core.SameSet(a, full) {
		if err := r.settle(a); err != nil {
			return err
		}
		next, ok := nextclosure.Next(uint(n), a, r.basis.Closure)
		if !ok {
			break
		}
		a = next
	}

	return nil
}

// settle asks about premise a until it is confirmed or becomes closed.
func (r *run) settle(a *bitset.BitSet) error {
	closure := r.work.AttributeClosure(a)
	for refuted := 0; !core.SameSet(a, closure); {
		if err := r.ctx.Err(); err != nil {
			return err
		}

		q := Question{Premise: r.work.AttributeNames(a), Conclusion: r.work.AttributeNames(closure)}
		r.cfg.stats.Questions++
		r.cfg.logger.Debug("asking", zap.Stringer("question", q))

		ans, err := r.oracle.Ask(r.ctx, q)
		if err != nil {
			return errors.Wrapf(err, "exploration: oracle on %s", q)
		}
		obj, refutes := ans.Object()
		if !refutes {
			r.basis.AddSet(a, closure)
			r.cfg.stats.Confirmations++
			r.cfg.logger.Debug("confirmed", zap.Stringer("implication", q))
			return nil
		}

		refuted++
		if r.cfg.max > 0 && refuted > r.cfg.max {
			return errors.Wrapf(ErrTooManyCounterexamples, "%d for %s", refuted, q)
		}
		if err := r.accept(q, a, closure, obj); err != nil {
			return err
		}
		closure = r.work.AttributeClosure(a)
	}

	return nil
}

// accept validates a counterexample and appends it to the working context.
func (r *run) accept(q Question, a, closure *bitset.BitSet, obj Object) error {
	row, err := r.work.AttributeSet(obj.Attributes)
	if err != nil {
		return errors.Wrapf(err, "exploration: counterexample %q", obj.Name)
	}
	row.InPlaceUnion(a)

	if row.IsSuperSet(closure) {
		return errors.Wrapf(ErrInconsistentCounterexample,
			"%q has every attribute of %s", obj.Name, q)
	}
	if !r.basis.Respects(row) {
		return errors.Wrapf(ErrInconsistentCounterexample,
			"%q violates a confirmed implication", obj.Name)
	}

	name, err := r.work.AddObjectSet(obj.Name, row)
	if err != nil {
		return errors.Wrap(err, "exploration: counterexample")
	}
	r.cfg.stats.Counterexamples++
	r.cfg.logger.Info("counterexample added",
		zap.String("object", name),
		zap.Strings("attributes", r.work.AttributeNames(row)),
		zap.Stringer("refutes", q))

	return nil
}
