// Copyright 2020-2026, Square, Inc.

package document

// Generates static checks to be performed on documents, their properties,
// and their nodes.
//
// Errors are mistakes that prevent a document from being built or compiled,
// for example a node of an unknown type. Errors can also enforce reasonable
// conventions, like property nodes only binding declared properties.
//
// Warnings identify probable mistakes, for example a property no node uses.
// They are logged but do not stop compilation.
type CheckFactory interface {
	MakeDocumentErrorChecks() ([]DocumentCheck, error)
	MakeDocumentWarningChecks() ([]DocumentCheck, error)
	MakePropertyErrorChecks() ([]PropertyCheck, error)
	MakePropertyWarningChecks() ([]PropertyCheck, error)
	MakeNodeErrorChecks() ([]NodeCheck, error)
	MakeNodeWarningChecks() ([]NodeCheck, error)
}

// The absolute minimum of checks for Build to succeed.
type BaseCheckFactory struct{}

func (c BaseCheckFactory) MakeDocumentErrorChecks() ([]DocumentCheck, error) {
	return []DocumentCheck{
		UniqueNodeIdsDocumentCheck{},
		UniquePropertyIdsDocumentCheck{},
		UniqueReferenceNamesDocumentCheck{},
		EdgesReferenceNodesDocumentCheck{},
		OneEdgePerInputDocumentCheck{},
	}, nil
}

func (c BaseCheckFactory) MakeDocumentWarningChecks() ([]DocumentCheck, error) {
	return []DocumentCheck{}, nil
}

func (c BaseCheckFactory) MakePropertyErrorChecks() ([]PropertyCheck, error) {
	return []PropertyCheck{
		HasKindPropertyCheck{},
		ValidReferenceNamePropertyCheck{},
	}, nil
}

func (c BaseCheckFactory) MakePropertyWarningChecks() ([]PropertyCheck, error) {
	return []PropertyCheck{}, nil
}

func (c BaseCheckFactory) MakeNodeErrorChecks() ([]NodeCheck, error) {
	return []NodeCheck{
		ValidTypeNodeCheck{},
		PropertyNodeHasPropertyNodeCheck{},
		ValidConstantKindNodeCheck{},
		ValidOpNodeCheck{},
	}, nil
}

func (c BaseCheckFactory) MakeNodeWarningChecks() ([]NodeCheck, error) {
	return []NodeCheck{}, nil
}

// Some default checks. Not strictly necessary to compile, but generally reasonable.
type DefaultCheckFactory struct{}

func (c DefaultCheckFactory) MakeDocumentErrorChecks() ([]DocumentCheck, error) {
	return []DocumentCheck{
		PropertiesDeclaredDocumentCheck{},
	}, nil
}

func (c DefaultCheckFactory) MakeDocumentWarningChecks() ([]DocumentCheck, error) {
	return []DocumentCheck{
		HasNodesDocumentCheck{},
		PropertiesUsedDocumentCheck{},
	}, nil
}

func (c DefaultCheckFactory) MakePropertyErrorChecks() ([]PropertyCheck, error) {
	return []PropertyCheck{}, nil
}

func (c DefaultCheckFactory) MakePropertyWarningChecks() ([]PropertyCheck, error) {
	return []PropertyCheck{
		HasDisplayNamePropertyCheck{},
	}, nil
}

func (c DefaultCheckFactory) MakeNodeErrorChecks() ([]NodeCheck, error) {
	return []NodeCheck{}, nil
}

func (c DefaultCheckFactory) MakeNodeWarningChecks() ([]NodeCheck, error) {
	return []NodeCheck{
		NoUnusedFieldsNodeCheck{},
	}, nil
}
