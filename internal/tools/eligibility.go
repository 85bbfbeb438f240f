// internal/tools/eligibility.go
package tools

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// EligibilityChecker evaluates a profile mapping against the catalog's rule
// bounds. It holds no mutable state: two calls with equal profiles return
// equal results.
type EligibilityChecker struct {
	logger  *zap.Logger
	catalog *Catalog
}

var _ Tool = (*EligibilityChecker)(nil)

// NewEligibilityChecker wraps a loaded catalog as the rule evaluator.
func NewEligibilityChecker(catalog *Catalog, logger *zap.Logger) *EligibilityChecker {
	return &EligibilityChecker{
		logger:  logger.Named("eligibility_checker"),
		catalog: catalog,
	}
}

// Name implements Tool.
func (c *EligibilityChecker) Name() string {
	return ToolEligibilityChecker
}

// Execute expects input["user_profile"] as a flat mapping with optional age,
// annual_income and category keys. The result carries the English names of
// every scheme whose bounds the profile satisfies; a bound on a field the
// profile does not carry counts as unsatisfied.
func (c *EligibilityChecker) Execute(ctx context.Context, input map[string]interface{}) (map[string]interface{}, error) {
	raw, ok := input["user_profile"]
	if !ok || raw == nil {
		return nil, NewMissingFieldError(ToolEligibilityChecker, "user_profile")
	}
	profile, ok := raw.(map[string]interface{})
	if !ok {
		return nil, NewInvalidFieldError(ToolEligibilityChecker, "user_profile",
			fmt.Sprintf("field %q must be a mapping, got %T", "user_profile", raw))
	}

	facts := factsFrom(profile)
	eligible := make([]string, 0, c.catalog.Len())
	for _, e := range c.catalog.entries {
		if e.admits(facts) {
			eligible = append(eligible, e.EnglishName)
		}
	}

	c.logger.Debug("eligibility evaluated",
		zap.Int("eligible", len(eligible)),
		zap.Int("evaluated", c.catalog.Len()))

	return map[string]interface{}{
		"eligible_schemes": eligible,
		"evaluated":        c.catalog.Len(),
	}, nil
}

// profileFacts is the subset of a profile mapping the rule table reads,
// with nil marking fields the profile did not carry.
type profileFacts struct {
	age      *int
	income   *int
	category string
}

func factsFrom(profile map[string]interface{}) profileFacts {
	var facts profileFacts
	if v, ok := intValue(profile["age"]); ok {
		facts.age = &v
	}
	if v, ok := intValue(profile["annual_income"]); ok {
		facts.income = &v
	}
	if s, ok := profile["category"].(string); ok {
		facts.category = strings.TrimSpace(s)
	}
	return facts
}

// admits reports whether the facts satisfy every bound the entry declares.
func (e schemeEntry) admits(facts profileFacts) bool {
	if e.MinAge != nil && (facts.age == nil || *facts.age < *e.MinAge) {
		return false
	}
	if e.MaxAge != nil && (facts.age == nil || *facts.age > *e.MaxAge) {
		return false
	}
	if e.MaxIncome != nil && (facts.income == nil || *facts.income > *e.MaxIncome) {
		return false
	}
	if len(e.Categories) > 0 {
		if facts.category == "" {
			return false
		}
		admitted := false
		for _, category := range e.Categories {
			if strings.EqualFold(category, facts.category) {
				admitted = true
				break
			}
		}
		if !admitted {
			return false
		}
	}
	return true
}

// intValue coerces the scalar shapes a profile mapping may carry for a
// numeric field: direct updates produce int, JSON decoding produces float64,
// voice extraction may leave digit strings.
func intValue(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
