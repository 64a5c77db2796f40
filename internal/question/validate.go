package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question seed.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question seed validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSeed trims whitespace and validates a question seed.
func NormalizeSeed(seed Seed) (Seed, error) {
	collector := &issueCollector{}
	if seed.Version == 0 {
		collector.add("version", "is required")
	} else if seed.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", seed.Version))
	}
	if len(seed.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	for i, entry := range seed.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		entry.Prompt = strings.TrimSpace(entry.Prompt)
		if entry.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		entry.Answers = normalizeStringSlice(entry.Answers)
		if len(entry.Answers) == 0 {
			collector.add(prefix+".answers", "must include at least one entry")
		} else {
			for answerIndex, answer := range entry.Answers {
				if answer == "" {
					collector.add(fmt.Sprintf("%s.answers[%d]", prefix, answerIndex), "is required")
				}
			}
		}
		seed.Questions[i] = entry
	}

	if err := collector.result(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
