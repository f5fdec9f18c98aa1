// Package failure defines the error taxonomy of the service: the closed set
// of failure categories, the recoverability decisioning rules, guidance
// bundles, and the factory that builds validated error values. Construction
// and classification never return an error themselves; anomalous inputs are
// substituted with safe defaults and reported through warning logs.
package failure

// Category is the discriminant of a classified failure. The set is closed:
// exactly five kinds exist.
type Category string

const (
	CategoryServer        Category = "Server"
	CategoryRequest       Category = "Request"
	CategoryValidation    Category = "Validation"
	CategoryResponse      Category = "Response"
	CategoryConfiguration Category = "Configuration"
)

// Valid reports whether c is one of the five enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryServer, CategoryRequest, CategoryValidation, CategoryResponse, CategoryConfiguration:
		return true
	default:
		return false
	}
}

// Code returns the wire-format type string for the category.
func (c Category) Code() string {
	switch c {
	case CategoryRequest:
		return "REQUEST_ERROR"
	case CategoryValidation:
		return "VALIDATION_ERROR"
	case CategoryResponse:
		return "RESPONSE_ERROR"
	case CategoryConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "SERVER_ERROR"
	}
}

// baselineRecoverable is the deterministic category -> recoverability table.
// Request-scoped categories allow the process to continue; Server and
// Configuration failures do not.
var baselineRecoverable = map[Category]bool{
	CategoryServer:        false,
	CategoryConfiguration: false,
	CategoryRequest:       true,
	CategoryValidation:    true,
	CategoryResponse:      true,
}

// BaselineRecoverable returns the table value for the category. Unknown
// categories are non-recoverable: when in doubt, availability is sacrificed
// for safety.
func BaselineRecoverable(c Category) bool {
	if recoverable, ok := baselineRecoverable[c]; ok {
		return recoverable
	}
	return false
}
