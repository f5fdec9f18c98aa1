package dto

// ErrorEnvelope is the wire-format structure returned to request-scoped
// callers describing a failure. Built fresh per formatting call; never
// mutated after return.
type ErrorEnvelope struct {
	// Error is always true; it lets clients branch on the envelope shape
	// without inspecting the HTTP status first.
	Error       bool              `json:"error"`
	Status      int               `json:"status"`
	Type        string            `json:"type"`
	Message     string            `json:"message"`
	Timestamp   string            `json:"timestamp"`
	Recoverable bool              `json:"recoverable"`
	Educational *EducationalBlock `json:"educational,omitempty"`
	Debug       *DebugBlock       `json:"debug,omitempty"`
	Recovery    *RecoveryBlock    `json:"recovery,omitempty"`
	HTTP        HTTPMetadata      `json:"http"`
}

// EducationalBlock mirrors the guidance bundle attached to an error.
type EducationalBlock struct {
	Troubleshooting string   `json:"troubleshooting"`
	DebuggingSteps  []string `json:"debuggingSteps"`
	LearningTips    []string `json:"learningTips"`
	RelatedConcepts []string `json:"relatedConcepts"`
}

// DebugBlock carries runtime identifiers for development-like environments
// only. It must never appear in production responses.
type DebugBlock struct {
	ErrorName   string   `json:"errorName"`
	StackTrace  []string `json:"stackTrace"`
	Recoverable bool     `json:"recoverable"`
}

// RecoveryBlock carries generic remediation hints for recoverable failures.
type RecoveryBlock struct {
	Recoverable bool     `json:"recoverable"`
	Suggestions []string `json:"suggestions"`
}

// HTTPMetadata describes how the envelope maps onto the HTTP response.
type HTTPMetadata struct {
	StatusCode int               `json:"statusCode"`
	StatusText string            `json:"statusText"`
	Headers    map[string]string `json:"headers"`
}
