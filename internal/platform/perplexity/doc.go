// Package perplexity implements the generation.Generator interface using the
// Perplexity chat completions API. It owns the wire schemas and the fixed
// request tuning (token budget, temperature, clinical search domain filter)
// so callers only supply prompts.
package perplexity
