/*
Package console prints arbor trees as indented outlines to terminals.

Every tree member is printed on a line of its own, indented by its depth.
Nodes and leaves may be colored differently. Labels are truncated to the
configured line width, measured in fixed width positions ("en"s) following
the rules of Unicode UAX#11 (East Asian Width).

	console.Print(root, nil)   // configured from the terminal and environment

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// Palette holds the colors for outline entries. A nil color prints plain text.
type Palette struct {
	Node *color.Color
	Leaf *color.Color
}

// DefaultPalette prints nodes in blue and terminal leaves in the default
// foreground color.
func DefaultPalette() *Palette {
	return &Palette{
		Node: color.New(color.FgBlue, color.Bold),
	}
}

// Config controls the output of Outline.
type Config struct {
	LineWidth int            // maximum width of a line in ‘en’s, 0 for unlimited
	Indent    string         // indentation per tree level, defaults to two spaces
	Palette   *Palette       // nil for plain text
	Context   *uax11.Context // nil for uax11.LatinContext
}

var setupGraphemes sync.Once

// Outline writes an indented outline of the subtree rooted at l to w.
func Outline(w io.Writer, l arbor.Leaf, config *Config) error {
	if l == nil {
		return arbor.ErrInvalidArgument
	}
	if config == nil {
		config = &Config{}
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	indent := config.Indent
	if indent == "" {
		indent = "  "
	}
	o := outliner{w: w, config: config, ctx: ctx, indent: indent}
	o.print(l, 0)
	return o.err
}

// Print writes an outline of the subtree rooted at l to stdout.
//
// If parameter config is nil, a heuristic will create a config from the current
// terminal's properties (if stdout is interactive). Config.Context will also be
// created based on heuristics from the user environment.
func Print(l arbor.Leaf, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
		config.Palette = DefaultPalette()
	}
	return Outline(os.Stdout, l, config)
}

type outliner struct {
	w      io.Writer
	config *Config
	ctx    *uax11.Context
	indent string
	err    error
}

func (o *outliner) print(l arbor.Leaf, depth int) {
	if o.err != nil {
		return
	}
	prefix := strings.Repeat(o.indent, depth)
	n, isNode := l.(arbor.Node)
	label := arbor.Label(l)
	if isNode {
		label = fmt.Sprintf("%s [%d]", label, n.ChildCount())
	}
	if o.config.LineWidth > 0 {
		label = o.truncate(label, o.config.LineWidth-o.width(prefix))
	}
	var c *color.Color
	if o.config.Palette != nil {
		if isNode {
			c = o.config.Palette.Node
		} else {
			c = o.config.Palette.Leaf
		}
	}
	if _, o.err = io.WriteString(o.w, prefix); o.err != nil {
		return
	}
	if c != nil {
		_, o.err = c.Fprint(o.w, label)
	} else {
		_, o.err = io.WriteString(o.w, label)
	}
	if o.err != nil {
		return
	}
	if _, o.err = io.WriteString(o.w, "\n"); o.err != nil {
		return
	}
	if isNode {
		for _, child := range n.Children() {
			o.print(child, depth+1)
		}
	}
}

func (o *outliner) width(s string) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), o.ctx)
}

// truncate shortens s to at most max ‘en’s, marking the cut with an ellipsis.
func (o *outliner) truncate(s string, max int) string {
	if s == "" || o.width(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	runes := []rune(s)
	for i := len(runes) - 1; i > 0; i-- {
		if t := string(runes[:i]) + "…"; o.width(t) <= max {
			return t
		}
	}
	tracer().Debugf("console: label %q does not fit into %d en", s, max)
	return "…"
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating an outline Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil || w < 10 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
	}
	tracer().Infof("console: setting line length to %d en", config.LineWidth)
	return config
}
