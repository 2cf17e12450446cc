package rules

// FixAvailable returns true for rules that provide auto-fix suggestions.
// This satisfies the linter.FixableRule interface.

func (r *NoInvalidHTMLAttributeRule) FixAvailable() bool   { return true }
func (r *JSXNoTargetBlankRule) FixAvailable() bool         { return true }
func (r *NoArrowFunctionLifecycleRule) FixAvailable() bool { return true }
func (r *NoNamedImportRule) FixAvailable() bool            { return true }
func (r *NoNamespaceImportRule) FixAvailable() bool        { return true }
func (r *JSXMaxPropsPerLineRule) FixAvailable() bool       { return true }
func (r *HookUseStateRule) FixAvailable() bool             { return true }
