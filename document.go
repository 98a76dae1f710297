package latex

import (
	"fmt"
	"io"
)

// Preamble collects the packages a document must load. Registrations
// are de-duplicated and keep first-seen order.
type Preamble struct {
	packages []string
}

// UsePackage registers a package requirement. Registering the same
// package again is a no-op.
func (p *Preamble) UsePackage(name string) {
	for _, pkg := range p.packages {
		if pkg == name {
			return
		}
	}
	p.packages = append(p.packages, name)
}

// Packages returns the registered packages in registration order.
// The returned slice is a copy.
func (p *Preamble) Packages() []string {
	out := make([]string, len(p.packages))
	copy(out, p.packages)
	return out
}

// Write writes a \usepackage line for each registered package.
func (p *Preamble) Write(w io.Writer) error {
	for _, pkg := range p.packages {
		if _, err := fmt.Fprintf(w, "\\usepackage{%s}\n", pkg); err != nil {
			return err
		}
	}
	return nil
}

// Document is the assembly target that tables register their
// requirements with via [Table.PrepareDocument].
type Document struct {
	Preamble Preamble
}
