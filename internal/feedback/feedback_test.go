package feedback

import (
	"reflect"
	"strings"
	"testing"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{"", 1},
		{"   ", 2},
		{"one", 1},
		{"one two three", 3},
		{"spaced\tout\nanswer", 3},
		{" leading and trailing ", 5},
	}
	for _, tt := range tests {
		if got := WordCount(tt.answer); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.answer, got, tt.want)
		}
	}
}

func TestAnalyzeTypicalAnswer(t *testing.T) {
	// 13 words, two recognized terms (algorithm, function).
	answer := "I would use a hash map and binary search algorithm for this function"
	fb := Analyze(answer, 8)

	if fb.Score != 4 {
		t.Errorf("Score = %d, want 4", fb.Score)
	}
	if fb.Metrics.Clarity != 6 {
		t.Errorf("Clarity = %d, want 6", fb.Metrics.Clarity)
	}
	if fb.Metrics.TechnicalAccuracy != 4 {
		t.Errorf("TechnicalAccuracy = %d, want 4", fb.Metrics.TechnicalAccuracy)
	}
	if fb.Metrics.Completeness != 2 {
		t.Errorf("Completeness = %d, want 2", fb.Metrics.Completeness)
	}
	if fb.Metrics.Confidence != 8 {
		t.Errorf("Confidence = %d, want 8", fb.Metrics.Confidence)
	}
	if want := []string{"algorithm", "function"}; !reflect.DeepEqual(fb.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", fb.Keywords, want)
	}
}

func TestAnalyzeEmptyAnswer(t *testing.T) {
	fb := Analyze("", DefaultConfidence)

	// An empty answer still splits to one token.
	if fb.Score != 0 {
		t.Errorf("Score = %d, want 0", fb.Score)
	}
	if fb.Metrics.Clarity != 0 || fb.Metrics.TechnicalAccuracy != 0 || fb.Metrics.Completeness != 0 {
		t.Errorf("metrics = %+v, want all zero except confidence", fb.Metrics)
	}
	if fb.Metrics.Confidence != DefaultConfidence {
		t.Errorf("Confidence = %d, want %d", fb.Metrics.Confidence, DefaultConfidence)
	}
	if fb.Keywords != nil {
		t.Errorf("Keywords = %v, want nil", fb.Keywords)
	}
}

func TestAnalyzeClampsAtTen(t *testing.T) {
	answer := strings.TrimSpace(strings.Repeat("algorithm database api ", 40))
	fb := Analyze(answer, 10)

	if fb.Score != 10 {
		t.Errorf("Score = %d, want 10", fb.Score)
	}
	if fb.Metrics.Clarity != 10 {
		t.Errorf("Clarity = %d, want 10", fb.Metrics.Clarity)
	}
	if fb.Metrics.TechnicalAccuracy != 10 {
		t.Errorf("TechnicalAccuracy = %d, want 10", fb.Metrics.TechnicalAccuracy)
	}
	if fb.Metrics.Completeness != 10 {
		t.Errorf("Completeness = %d, want 10", fb.Metrics.Completeness)
	}
}

func TestAnalyzeComplexityCountsOnlyInAggregate(t *testing.T) {
	fb := Analyze("complexity complexity complexity", 5)

	// Three words and three aggregate terms.
	if want := 6; fb.Score != want {
		t.Errorf("Score = %d, want %d", fb.Score, want)
	}
	// The accuracy vocabulary does not include "complexity".
	if fb.Metrics.TechnicalAccuracy != 0 {
		t.Errorf("TechnicalAccuracy = %d, want 0", fb.Metrics.TechnicalAccuracy)
	}
	if want := []string{"complexity"}; !reflect.DeepEqual(fb.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", fb.Keywords, want)
	}
}

func TestAnalyzeStrengthsAndImprovements(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 120))
	fb := Analyze(long, 5)
	if fb.Strengths[0] != "Provided a comprehensive response" {
		t.Errorf("long answer strength = %q", fb.Strengths[0])
	}
	if fb.Improvements[0] != "Consider being more concise" {
		t.Errorf("long answer improvement = %q", fb.Improvements[0])
	}
	if fb.Strengths[1] != "Clear explanation" {
		t.Errorf("term-poor answer strength = %q", fb.Strengths[1])
	}
	if fb.Improvements[1] != "Include more technical details" {
		t.Errorf("term-poor answer improvement = %q", fb.Improvements[1])
	}

	short := "use the api database and class method here"
	fb = Analyze(short, 5)
	if fb.Strengths[0] != "Answered concisely" {
		t.Errorf("short answer strength = %q", fb.Strengths[0])
	}
	if fb.Improvements[0] != "Could elaborate more on the solution" {
		t.Errorf("short answer improvement = %q", fb.Improvements[0])
	}
	if fb.Strengths[1] != "Good use of technical terminology" {
		t.Errorf("term-rich answer strength = %q", fb.Strengths[1])
	}
	if fb.Improvements[1] != "Balance technical terms with explanations" {
		t.Errorf("term-rich answer improvement = %q", fb.Improvements[1])
	}
	if fb.Strengths[2] != "Demonstrated problem-solving approach" {
		t.Errorf("fixed strength = %q", fb.Strengths[2])
	}
	if fb.Improvements[2] != "Add specific real-world examples" {
		t.Errorf("fixed improvement = %q", fb.Improvements[2])
	}
}

func TestKeywordsDedupedCaseInsensitive(t *testing.T) {
	fb := Analyze("Database first, then API, then the database again", 5)
	want := []string{"database", "api"}
	if !reflect.DeepEqual(fb.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", fb.Keywords, want)
	}
}

func TestAnalyzeMatchesWholeWordsOnly(t *testing.T) {
	fb := Analyze("classy methodology functional", 5)
	if fb.Metrics.TechnicalAccuracy != 0 {
		t.Errorf("TechnicalAccuracy = %d, want 0 for substring-only matches", fb.Metrics.TechnicalAccuracy)
	}
	if fb.Keywords != nil {
		t.Errorf("Keywords = %v, want nil", fb.Keywords)
	}
}
