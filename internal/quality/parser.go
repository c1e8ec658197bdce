// Package quality extracts the machine-readable quality tag that the model is
// instructed to embed in its replies. A tag has the exact shape
// [QUALITY:<score>:<reason>] and may appear anywhere in the generated text.
package quality

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultScore is the neutral score reported when no tag is present.
const DefaultScore = 5

// DefaultReason is the reason reported when no tag is present.
const DefaultReason = "Question quality could not be evaluated"

// tagRE matches a quality tag. The reason runs up to (excluding) the closing
// bracket.
var tagRE = regexp.MustCompile(`\[QUALITY:(\d+):([^\]]+)\]`)

// Signal is the outcome of parsing generated text for a quality tag.
type Signal struct {
	// Score is the self-reported question quality. The provider nominally
	// emits 1–10 but no clamping is applied here; callers validating range
	// must do so themselves.
	Score int
	// Reason is the self-reported justification, trimmed of whitespace.
	Reason string
	// CleanedText is the input with every tag occurrence removed and the
	// ends trimmed. Interior spacing is left as produced by the model.
	CleanedText string
}

// Parse scans text for quality tags. The first tag supplies Score and Reason;
// all occurrences are stripped from CleanedText so no tag leaks to clients.
// When no tag is found the neutral defaults apply and the text is returned
// trimmed but otherwise unchanged.
func Parse(text string) Signal {
	m := tagRE.FindStringSubmatch(text)
	if m == nil {
		return Signal{
			Score:       DefaultScore,
			Reason:      DefaultReason,
			CleanedText: strings.TrimSpace(text),
		}
	}

	cleaned := strings.TrimSpace(tagRE.ReplaceAllString(text, ""))

	score, err := strconv.Atoi(m[1])
	if err != nil {
		// Digits too long to fit an int; the whole tag is treated as
		// unevaluated, reason included, but it is still stripped.
		return Signal{
			Score:       DefaultScore,
			Reason:      DefaultReason,
			CleanedText: cleaned,
		}
	}

	return Signal{
		Score:       score,
		Reason:      strings.TrimSpace(m[2]),
		CleanedText: cleaned,
	}
}
