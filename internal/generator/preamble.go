// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"regexp"
	"strings"
)

// preamblePattern matches the opening of the meta-sentences the model
// habitually prepends to its answer ("You are an expert...", "Your task
// is...", "Your goal is...").
var preamblePattern = regexp.MustCompile(`(?i)^(you are|your\s+(task|goal)\s+is)`)

// StripPreamble removes a leading preamble paragraph from generated text.
// If the first line matches preamblePattern, every line up to and including
// the first blank line is dropped, along with any further consecutive blank
// lines; otherwise the text is returned unchanged apart from trimming.
//
// This is a best-effort heuristic: a legitimate first sentence that happens
// to start with "You are" (for example a persona described inside the
// produced prompt) is indistinguishable from true preamble and gets
// dropped too. Kept as-is deliberately — changing the matching behaviour
// changes user-visible output.
func StripPreamble(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	start := 0
	if len(lines) > 0 && preamblePattern.MatchString(strings.TrimSpace(lines[0])) {
		// Skip the preamble paragraph...
		for start < len(lines) && strings.TrimSpace(lines[start]) != "" {
			start++
		}
		// ...and the blank-line run that ends it.
		for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
			start++
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:], "\n"))
}
