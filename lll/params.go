package lll

import (
	"fmt"
	"log"

	"github.com/lattice-labs/lllbkz/rational"
)

// eta is the fixed size-reduction bound from spec.md §3: η = 1/2.
var eta = rational.Half()

// Params configures a reduction, per spec.md §3: delta and debug.
// Construction follows the teacher's plain-struct style; Option is a
// small functional-options helper rather than a builder type, matching
// the teacher's lack of any configuration framework.
type Params struct {
	delta  rational.Rational
	debug  bool
	logger *log.Logger
}

// Option configures a Params value.
type Option func(*Params)

// WithDelta sets the Lovász parameter delta, which must lie in
// (1/4, 1]. NewParams defaults it to 3/4.
func WithDelta(delta rational.Rational) Option {
	return func(p *Params) { p.delta = delta }
}

// WithDebug enables optional diagnostic logging. Per spec.md §4.2's
// failure semantics, this never changes reduction outputs.
func WithDebug(debug bool) Option {
	return func(p *Params) { p.debug = debug }
}

// WithLogger sets the logger used for debug diagnostics when debug is
// enabled. If unset, debug logging is a no-op.
func WithLogger(l *log.Logger) Option {
	return func(p *Params) { p.logger = l }
}

// NewParams builds Params with delta = 3/4 and debug = false, then
// applies opts in order.
func NewParams(opts ...Option) Params {
	p := Params{delta: rational.FromInts(3, 4)}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Delta returns the configured Lovász parameter.
func (p Params) Delta() rational.Rational { return p.delta }

// Debug reports whether diagnostic logging is enabled.
func (p Params) Debug() bool { return p.debug }

func (p Params) logf(format string, args ...any) {
	if p.debug && p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

// validate checks the "invalid parameter" error class of spec.md §7:
// delta must lie in (1/4, 1].
func (p Params) validate() error {
	quarter := rational.FromInts(1, 4)
	one := rational.One()
	if p.delta.Cmp(quarter) <= 0 || p.delta.Cmp(one) > 0 {
		return fmt.Errorf("%w: delta = %s, want delta in (1/4, 1]", ErrInvalidParams, p.delta)
	}
	return nil
}
