// Package printer handles output formatting and display
package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Format selects how each file is framed in the output.
type Format string

const (
	// FormatPlain writes the path, a "---" line, the content and a closing "---".
	FormatPlain Format = "plain"
	// FormatXML wraps every file in an indexed <document> element.
	FormatXML Format = "xml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain", "default":
		return FormatPlain, nil
	case "xml", "cxml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("printer: %w: %q", ErrUnknownFormat, name)
	}
}

// Printer handles output formatting and writing to the configured output destination.
// One Printer covers one invocation: its document index starts at 1 and
// keeps counting across every root written through it.
type Printer struct {
	output    io.Writer
	format    Format
	useColors bool
	count     int
	started   bool
	finalized bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		format:    FormatPlain,
		useColors: false,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithFormat sets the framing used for every file
func (p *Printer) WithFormat(f Format) *Printer {
	p.format = f
	return p
}

// WithColors enables or disables the coloured path header in plain mode
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// Begin writes the opening of the output. It is called implicitly by the
// first PrintFile and is safe to call more than once.
func (p *Printer) Begin() error {
	if p.started {
		return nil
	}
	p.started = true

	if p.format == FormatXML {
		_, err := fmt.Fprint(p.output, "<documents>\n")
		return err
	}
	return nil
}

// PrintFile outputs the content of a file with its path
func (p *Printer) PrintFile(path string, content []byte) error {
	if err := p.Begin(); err != nil {
		return err
	}

	p.count++

	if p.format == FormatXML {
		_, err := fmt.Fprintf(p.output,
			"<document index=\"%d\">\n<source>%s</source>\n<document_content>\n%s\n</document_content>\n</document>\n",
			p.count, path, content)
		return err
	}

	header := path
	if p.useColors {
		c := color.New(color.FgCyan, color.Bold)
		c.EnableColor()
		header = c.Sprint(path)
	}
	_, err := fmt.Fprintf(p.output, "%s\n---\n%s\n\n---\n", header, content)
	return err
}

// Finalize completes any pending operations (like closing the XML root)
func (p *Printer) Finalize() error {
	if p.finalized {
		return nil
	}
	if err := p.Begin(); err != nil {
		return err
	}
	p.finalized = true

	if p.format == FormatXML {
		_, err := fmt.Fprint(p.output, "</documents>\n")
		return err
	}
	return nil
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int {
	return p.count
}
