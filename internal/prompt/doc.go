// Package prompt composes the system and user prompts sent to the
// completion provider. Each content type has a fixed system prompt and a
// user-prompt template with an ordered checklist of sections; supplied
// demographic fields are always interpolated verbatim.
package prompt
