// Package generation provides the interface and error taxonomy for
// interacting with the external completion provider. It abstracts the
// details of the provider API (Perplexity), allowing the application to
// generate clinical content without coupling to a specific external service.
package generation
