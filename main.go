package main

import "github.com/jag-main/go-dev-template/internal/greeting"

// Minimal entry point for the template placeholder: running the module
// directly emits the greeting line. The full CLI lives in cmd/greeter.
func main() {
	greeting.Greet()
}
