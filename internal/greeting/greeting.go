package greeting

import "fmt"

// Message is the exact line emitted by Greet. The {{PROJECT_NAME}} token
// is a scaffolding placeholder: it is substituted when a project is
// generated from this template, never at runtime.
const Message = "Hello from {{PROJECT_NAME}}!"

// Printer writes one line of text to an output stream. The production
// printer targets standard output; tests may substitute their own to
// observe the single call Greet makes.
type Printer interface {
	Println(s string)
}

type stdoutPrinter struct{}

// Println writes s followed by a single newline to standard output. The
// line terminator is appended here, not by the caller.
func (stdoutPrinter) Println(s string) {
	fmt.Println(s)
}

// Greeter emits the template greeting through a Printer.
type Greeter struct {
	printer Printer
}

// New returns a Greeter bound to standard output.
func New() *Greeter {
	return &Greeter{printer: stdoutPrinter{}}
}

// NewWithPrinter returns a Greeter that emits through p.
func NewWithPrinter(p Printer) *Greeter {
	return &Greeter{printer: p}
}

// Greet writes Message as one complete line. Calls are independent:
// repeated calls emit repeated identical lines.
func (g *Greeter) Greet() {
	g.printer.Println(Message)
}

// Greet writes the greeting line to standard output.
func Greet() {
	New().Greet()
}
