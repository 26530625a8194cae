// Copyright 2020-2026, Square, Inc.

package document

import (
	"sort"
)

type CheckResult struct {
	Errors   []error
	Warnings []error
}

// CheckResults are check results keyed by document.
type CheckResults struct {
	Results    map[string]*CheckResult
	AnyError   bool
	AnyWarning bool
}

func NewCheckResults() *CheckResults {
	return &CheckResults{
		Results: map[string]*CheckResult{},
	}
}

func (c *CheckResults) AddError(key string, err error) {
	if _, ok := c.Results[key]; !ok {
		c.Results[key] = &CheckResult{}
	}
	c.Results[key].Errors = append(c.Results[key].Errors, err)
	c.AnyError = true
}

func (c *CheckResults) AddWarning(key string, err error) {
	if _, ok := c.Results[key]; !ok {
		c.Results[key] = &CheckResult{}
	}
	c.Results[key].Warnings = append(c.Results[key].Warnings, err)
	c.AnyWarning = true
}

func (c *CheckResults) Union(other *CheckResults) {
	for key, result := range other.Results {
		if _, ok := c.Results[key]; !ok {
			c.Results[key] = &CheckResult{}
		}
		c.Results[key].Errors = append(c.Results[key].Errors, result.Errors...)
		c.Results[key].Warnings = append(c.Results[key].Warnings, result.Warnings...)
	}
	c.AnyError = c.AnyError || other.AnyError
	c.AnyWarning = c.AnyWarning || other.AnyWarning
}

func (c *CheckResults) Get(key string) (*CheckResult, bool) {
	result, ok := c.Results[key]
	return result, ok
}

// Keys returns the documents with results, sorted.
func (c *CheckResults) Keys() []string {
	keys := make([]string, 0, len(c.Results))
	for k := range c.Results {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
