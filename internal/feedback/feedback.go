// Package feedback scores free-text answers with a fixed heuristic.
//
// The scoring is intentionally shallow: word count and a small
// technical vocabulary drive every number. It is a stand-in for real
// answer evaluation, not an attempt at language understanding.
package feedback

import (
	"math"
	"regexp"
	"strings"

	"github.com/santhoshini-18/interview-assistance/internal/model"
)

// DefaultConfidence is used when no rating accompanies an answer, such
// as the synthesized answer on timer expiry.
const DefaultConfidence = 7

var (
	whitespace = regexp.MustCompile(`\s+`)

	// The aggregate score and the technical-accuracy sub-score count
	// different vocabularies: only the former includes "complexity".
	// Both are kept distinct on purpose; see DESIGN.md.
	aggregateTerms = regexp.MustCompile(`(?i)\b(algorithm|complexity|api|database|function|class|method)\b`)
	accuracyTerms  = regexp.MustCompile(`(?i)\b(algorithm|api|database|function|class|method)\b`)
)

// WordCount counts whitespace-delimited tokens. Splitting an empty or
// leading/trailing-whitespace string produces empty tokens that are
// counted too, so the minimum is 1.
func WordCount(answer string) int {
	return len(whitespace.Split(answer, -1))
}

// Analyze scores an answer and the candidate's own confidence rating.
// Pure function: same inputs always yield the same Feedback, and it
// never fails regardless of input.
func Analyze(answer string, confidence int) model.Feedback {
	wordCount := WordCount(answer)
	aggCount := len(aggregateTerms.FindAllString(answer, -1))
	accCount := len(accuracyTerms.FindAllString(answer, -1))

	score := clampScore(int(math.Floor((float64(wordCount)/50 + float64(aggCount)) * 2)))

	metrics := model.AnswerMetrics{
		Clarity:           clampScore(int(math.Floor(float64(wordCount) / 20 * 10))),
		TechnicalAccuracy: clampScore(accCount * 2),
		Completeness:      clampScore(int(math.Floor(float64(wordCount) / 50 * 10))),
		Confidence:        confidence,
	}

	strengths := []string{
		pick(wordCount >= 100, "Provided a comprehensive response", "Answered concisely"),
		pick(aggCount >= 3, "Good use of technical terminology", "Clear explanation"),
		"Demonstrated problem-solving approach",
	}
	improvements := []string{
		pick(wordCount < 100, "Could elaborate more on the solution", "Consider being more concise"),
		pick(aggCount < 3, "Include more technical details", "Balance technical terms with explanations"),
		"Add specific real-world examples",
	}

	return model.Feedback{
		Score:        score,
		Metrics:      metrics,
		Strengths:    strengths,
		Improvements: improvements,
		Keywords:     keywords(answer),
	}
}

// keywords returns the distinct recognized technical terms in the
// answer, lowercased, in order of first occurrence.
func keywords(answer string) []string {
	matches := aggregateTerms.FindAllString(answer, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		term := strings.ToLower(m)
		if seen[term] {
			continue
		}
		seen[term] = true
		out = append(out, term)
	}
	return out
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
