package llm

import (
	"strings"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
)

// classifyRule matches provider error text against a set of substrings and
// maps the hit to a domain error constructor.
type classifyRule struct {
	substrings []string
	wrap       func(message string) error
}

// classifyRules is an ordered list: rate-limit rules run before auth rules,
// so text matching both classes resolves to the rate-limit error.
var classifyRules = []classifyRule{
	{
		substrings: []string{"rate_limit", "rate limit", "quota", "resource_exhausted", "429", "too many requests"},
		wrap: func(message string) error {
			return domain.NewRateLimitErr(message)
		},
	},
	{
		substrings: []string{"authentication", "api_key", "api key", "unauthorized", "401", "api_key_invalid"},
		wrap: func(message string) error {
			return domain.NewAuthErr(message)
		},
	},
}

// classifyProviderError maps raw provider failures onto domain error types
// by substring inspection of the lowercased error text. Unmatched errors
// pass through unchanged.
func classifyProviderError(err error) error {
	if err == nil {
		return nil
	}

	lowered := strings.ToLower(err.Error())
	for _, rule := range classifyRules {
		for _, substring := range rule.substrings {
			if strings.Contains(lowered, substring) {
				return rule.wrap(err.Error())
			}
		}
	}
	return err
}
