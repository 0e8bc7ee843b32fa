package axis

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/internal/options"
	"github.com/arloliu/histo/internal/textfmt"
)

// metadata holds the settings every built-in axis carries.
type metadata struct {
	opts  Option
	label string
}

// Options returns the boundary behavior of the axis.
func (m *metadata) Options() Option {
	return m.opts
}

// Label returns the axis label. The axis never interprets it.
func (m *metadata) Label() string {
	return m.label
}

// Setting configures an axis at construction.
type Setting = options.Option[*metadata]

// WithOptions replaces the default option set of the axis.
//
// Growth cannot be combined with Underflow or Overflow.
func WithOptions(opts Option) Setting {
	return options.New(func(m *metadata) error {
		if opts&^allOptions != 0 {
			return fmt.Errorf("%w: unknown option bits %#x", errs.ErrInvalidAxis, uint8(opts&^allOptions))
		}
		if opts.Test(Growth) && opts&(Underflow|Overflow) != 0 {
			return fmt.Errorf("%w: growth cannot be combined with %s", errs.ErrInvalidAxis, opts&^Growth)
		}
		m.opts = opts

		return nil
	})
}

// WithLabel attaches an opaque label to the axis.
func WithLabel(label string) Setting {
	return options.NoError(func(m *metadata) {
		m.label = label
	})
}

// newMetadata applies settings over defaults and appends every failure to errp.
func newMetadata(defaults Option, settings []Setting, errp *error) metadata {
	m := metadata{opts: defaults}
	*errp = multierr.Append(*errp, options.ApplyAll(&m, settings...))

	return m
}

// describe appends the label and options to a String() rendering.
func (m *metadata) describe(sb *strings.Builder) {
	if m.label != "" {
		sb.WriteString(", label=")
		textfmt.Escape(sb, m.label)
	}
	sb.WriteString(", options=")
	sb.WriteString(m.opts.String())
}
