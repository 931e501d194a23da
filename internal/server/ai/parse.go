package ai

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultConfidence is used when the model does not report a score.
const defaultConfidence = 0.85

var confidenceRe = regexp.MustCompile(`(?i)Confidence:\s*([0-9]*\.?[0-9]+)`)

// extractConfidence strips a trailing "Confidence: 0.xx" line from the
// model output and returns the remainder plus the parsed score. Scores
// outside 0..1, or a missing line, fall back to defaultConfidence.
func extractConfidence(text string) (string, float64) {
	confidence := defaultConfidence

	m := confidenceRe.FindStringSubmatch(text)
	if m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 0.0 && v <= 1.0 {
			confidence = v
		}
		text = strings.TrimSpace(confidenceRe.ReplaceAllString(text, ""))
	}

	return strings.TrimSpace(text), confidence
}

var analysisHeaders = []string{
	"SUMMARY:",
	"BUSINESS INSIGHTS:",
	"TECHNICAL INSIGHTS:",
	"ACTION ITEMS:",
	"KEY TOPICS:",
}

// parseAnalysisSections splits the model output on the known section
// headers. Missing required sections degrade to the full text (summary)
// or an empty string; missing optional sections stay nil.
func parseAnalysisSections(text string) *AnalysisResult {
	sections := map[string]string{}

	lines := strings.Split(text, "\n")
	current := ""
	var buf []string

	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		header := ""
		for _, h := range analysisHeaders {
			if strings.HasPrefix(strings.ToUpper(trimmed), h) {
				header = h
				break
			}
		}
		if header != "" {
			flush()
			current = header
			// text may follow the header on the same line
			rest := strings.TrimSpace(trimmed[len(header):])
			if rest != "" {
				buf = append(buf, rest)
			}
			continue
		}
		buf = append(buf, line)
	}
	flush()

	result := &AnalysisResult{
		Summary:           sections["SUMMARY:"],
		BusinessInsights:  sections["BUSINESS INSIGHTS:"],
		TechnicalInsights: sections["TECHNICAL INSIGHTS:"],
	}
	if result.Summary == "" {
		result.Summary = strings.TrimSpace(text)
	}
	if v, ok := sections["ACTION ITEMS:"]; ok && v != "" {
		result.ActionItems = &v
	}
	if v, ok := sections["KEY TOPICS:"]; ok && v != "" {
		result.KeyTopics = &v
	}

	return result
}
