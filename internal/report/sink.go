// =============================================================================
// HTML Table Converter - Report Sink
// =============================================================================
//
// A Sink is where the converter and the CLI send user-facing messages.
// Two implementations exist:
//   - Plain:  one line per message, no escape codes
//   - Styled: colored and bold output through github.com/fatih/color
//
// New picks one of them once at startup. Styled output is used only when
// color is enabled for the process (a terminal, and NO_COLOR unset).
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Sink receives progress and error messages. Implementations are safe for
// concurrent use.
type Sink interface {
	// Debug is printed only in verbose mode.
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// New returns a styled sink when the terminal supports color and a plain
// sink otherwise.
func New(w io.Writer, verbose bool) Sink {
	if color.NoColor {
		return NewPlain(w, verbose)
	}
	return NewStyled(w, verbose)
}

// =============================================================================
// PLAIN SINK
// =============================================================================

// Plain writes each message as a single unadorned line.
type Plain struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool
}

// NewPlain creates a Plain sink.
func NewPlain(w io.Writer, verbose bool) *Plain {
	return &Plain{w: w, verbose: verbose}
}

func (p *Plain) Debug(format string, args ...interface{}) {
	if p.verbose {
		p.println(format, args...)
	}
}

func (p *Plain) Info(format string, args ...interface{})    { p.println(format, args...) }
func (p *Plain) Success(format string, args ...interface{}) { p.println(format, args...) }
func (p *Plain) Warn(format string, args ...interface{})    { p.println(format, args...) }
func (p *Plain) Error(format string, args ...interface{})   { p.println(format, args...) }

func (p *Plain) println(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, format+"\n", args...)
}

// =============================================================================
// STYLED SINK
// =============================================================================

// Styled writes colored messages: success in bold green, warnings in
// yellow, errors in red and debug output faint.
type Styled struct {
	mu      sync.Mutex
	w       io.Writer
	verbose bool

	debug   *color.Color
	success *color.Color
	warn    *color.Color
	err     *color.Color
}

// NewStyled creates a Styled sink. Colors are forced on; use New to honour
// the terminal's capabilities.
func NewStyled(w io.Writer, verbose bool) *Styled {
	s := &Styled{
		w:       w,
		verbose: verbose,
		debug:   color.New(color.Faint),
		success: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
		err:     color.New(color.FgRed),
	}
	for _, c := range []*color.Color{s.debug, s.success, s.warn, s.err} {
		c.EnableColor()
	}
	return s
}

func (s *Styled) Debug(format string, args ...interface{}) {
	if s.verbose {
		s.print(s.debug, format, args...)
	}
}

func (s *Styled) Info(format string, args ...interface{})    { s.print(nil, format, args...) }
func (s *Styled) Success(format string, args ...interface{}) { s.print(s.success, format, args...) }
func (s *Styled) Warn(format string, args ...interface{})    { s.print(s.warn, format, args...) }
func (s *Styled) Error(format string, args ...interface{})   { s.print(s.err, format, args...) }

func (s *Styled) print(c *color.Color, format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c == nil {
		fmt.Fprintf(s.w, format+"\n", args...)
		return
	}
	c.Fprintf(s.w, format, args...)
	fmt.Fprintln(s.w)
}
