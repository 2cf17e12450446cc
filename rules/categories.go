package rules

// Rule categories for React and JSX linting

const (
	// CategoryPossibleErrors represents rules that catch code which is broken
	// or behaves differently than it reads
	// Examples: namespaced element names, invalid rel values
	CategoryPossibleErrors = "possible-errors"

	// CategoryBestPractices represents rules that steer towards the patterns
	// React recommends
	// Examples: children passed as props, object literals as default props
	CategoryBestPractices = "best-practices"

	// CategorySecurity represents rules that check for security concerns
	// Examples: target="_blank" without rel="noreferrer", unsandboxed iframes
	CategorySecurity = "security"

	// CategoryStyle represents rules that enforce a consistent way of writing
	// components
	// Examples: props per line, destructuring, import style
	CategoryStyle = "style"
)
