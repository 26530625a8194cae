// Copyright 2020-2026, Square, Inc.

package document

// Runs checks on documents.
type Checker struct {
	// Checks to run. ErrorChecks are fatal on failure. Warnings are not.
	documentErrorChecks   []DocumentCheck
	documentWarningChecks []DocumentCheck
	propertyErrorChecks   []PropertyCheck
	propertyWarningChecks []PropertyCheck
	nodeErrorChecks       []NodeCheck
	nodeWarningChecks     []NodeCheck
}

// Create a new Checker with the checks specified by check factories in list.
func NewChecker(checkFactories []CheckFactory) (*Checker, error) {
	checker := &Checker{
		documentErrorChecks:   []DocumentCheck{},
		documentWarningChecks: []DocumentCheck{},
		propertyErrorChecks:   []PropertyCheck{},
		propertyWarningChecks: []PropertyCheck{},
		nodeErrorChecks:       []NodeCheck{},
		nodeWarningChecks:     []NodeCheck{},
	}

	for _, factory := range checkFactories {
		dec, err := factory.MakeDocumentErrorChecks()
		if err != nil {
			return nil, err
		}
		checker.documentErrorChecks = append(checker.documentErrorChecks, dec...)

		dwc, err := factory.MakeDocumentWarningChecks()
		if err != nil {
			return nil, err
		}
		checker.documentWarningChecks = append(checker.documentWarningChecks, dwc...)

		pec, err := factory.MakePropertyErrorChecks()
		if err != nil {
			return nil, err
		}
		checker.propertyErrorChecks = append(checker.propertyErrorChecks, pec...)

		pwc, err := factory.MakePropertyWarningChecks()
		if err != nil {
			return nil, err
		}
		checker.propertyWarningChecks = append(checker.propertyWarningChecks, pwc...)

		nec, err := factory.MakeNodeErrorChecks()
		if err != nil {
			return nil, err
		}
		checker.nodeErrorChecks = append(checker.nodeErrorChecks, nec...)

		nwc, err := factory.MakeNodeWarningChecks()
		if err != nil {
			return nil, err
		}
		checker.nodeWarningChecks = append(checker.nodeWarningChecks, nwc...)
	}

	return checker, nil
}

// Check runs every check on one document. Results are keyed by the
// document name.
func (checker *Checker) Check(d *Document) *CheckResults {
	results := NewCheckResults()
	name := d.Name

	for _, check := range checker.documentErrorChecks {
		if err := check.CheckDocument(*d); err != nil {
			results.AddError(name, err)
		}
	}
	for _, check := range checker.documentWarningChecks {
		if err := check.CheckDocument(*d); err != nil {
			results.AddWarning(name, err)
		}
	}

	for _, p := range d.Properties {
		for _, check := range checker.propertyErrorChecks {
			if err := check.CheckProperty(name, p); err != nil {
				results.AddError(name, err)
			}
		}
		for _, check := range checker.propertyWarningChecks {
			if err := check.CheckProperty(name, p); err != nil {
				results.AddWarning(name, err)
			}
		}
	}

	for _, n := range d.Nodes {
		for _, check := range checker.nodeErrorChecks {
			if err := check.CheckNode(name, n); err != nil {
				results.AddError(name, err)
			}
		}
		for _, check := range checker.nodeWarningChecks {
			if err := check.CheckNode(name, n); err != nil {
				results.AddWarning(name, err)
			}
		}
	}

	return results
}

// RunChecks runs every check on every document.
func (checker *Checker) RunChecks(docs []*Document) *CheckResults {
	results := NewCheckResults()
	for _, d := range docs {
		results.Union(checker.Check(d))
	}
	return results
}
