package generator

import (
	"regexp"
	"strings"

	"quizforge/internal/domain"
)

// fencedJSON matches the first markdown code block tagged as json whose body
// is a top-level object. (?s) lets the object span lines.
var fencedJSON = regexp.MustCompile("(?s)```json\\s*(\\{.*\\})\\s*```")

// ExtractJSON pulls the candidate JSON payload out of a free-form model reply.
// The first fenced json block wins, with its exact inner content; when no
// fence matches, all fence markers are stripped from the whole reply and the
// remainder is the candidate. An empty or whitespace-only candidate is an
// extraction failure.
//
// This is deliberately an isolated function: the brittleness of pattern
// matching over model output stays contained here.
func ExtractJSON(raw string) (string, error) {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}

	candidate := strings.ReplaceAll(raw, "```json", "")
	candidate = strings.ReplaceAll(candidate, "```", "")
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", domain.NewExtractionFailedError("Could not extract any JSON content from the model reply")
	}
	return candidate, nil
}
