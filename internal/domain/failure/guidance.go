package failure

// Guidance is the structured troubleshooting and educational content carried
// by an error value. It is a fixed-shape value type; the only mutation path
// is Merge, which appends to sequences and overwrites scalar fields, never
// truncating prior content.
type Guidance struct {
	Troubleshooting string
	DebuggingSteps  []string
	LearningTips    []string
	RelatedConcepts []string
}

// IsZero reports whether the bundle carries no content at all.
func (g Guidance) IsZero() bool {
	return g.Troubleshooting == "" &&
		len(g.DebuggingSteps) == 0 &&
		len(g.LearningTips) == 0 &&
		len(g.RelatedConcepts) == 0
}

// Merge returns a new bundle with override applied on top of g: sequence
// fields are appended in order, the troubleshooting text is overwritten when
// the override provides one.
func (g Guidance) Merge(override Guidance) Guidance {
	merged := Guidance{
		Troubleshooting: g.Troubleshooting,
		DebuggingSteps:  appendCopy(g.DebuggingSteps, override.DebuggingSteps),
		LearningTips:    appendCopy(g.LearningTips, override.LearningTips),
		RelatedConcepts: appendCopy(g.RelatedConcepts, override.RelatedConcepts),
	}
	if override.Troubleshooting != "" {
		merged.Troubleshooting = override.Troubleshooting
	}
	return merged
}

// appendCopy concatenates into fresh backing storage so merged bundles never
// alias their sources.
func appendCopy(base, extra []string) []string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

// guidanceTemplates holds the deterministic per-category guidance content
// attached to every error built by the factory.
var guidanceTemplates = map[Category]Guidance{
	CategoryServer: {
		Troubleshooting: "The server hit an unexpected internal condition while handling the operation.",
		DebuggingSteps: []string{
			"Check the server logs around the failure timestamp for a stack trace",
			"Reproduce the request with verbose logging enabled",
			"Verify recent code or dependency changes",
		},
		LearningTips: []string{
			"5xx responses signal server-side faults; the client request may have been well-formed",
		},
		RelatedConcepts: []string{"HTTP 500", "error handling middleware", "structured logging"},
	},
	CategoryRequest: {
		Troubleshooting: "The incoming request could not be handled as sent.",
		DebuggingSteps: []string{
			"Inspect the request method, path and headers",
			"Compare the request against the route's expected shape",
		},
		LearningTips: []string{
			"4xx responses signal client-side problems that retrying unchanged will not fix",
		},
		RelatedConcepts: []string{"HTTP request lifecycle", "routing", "status codes"},
	},
	CategoryValidation: {
		Troubleshooting: "A request parameter or payload field failed validation.",
		DebuggingSteps: []string{
			"Read the validation message for the offending field",
			"Check types and value ranges of request parameters",
		},
		LearningTips: []string{
			"Validate input at the boundary and keep inner layers free of malformed data",
		},
		RelatedConcepts: []string{"input validation", "HTTP 400", "defense in depth"},
	},
	CategoryResponse: {
		Troubleshooting: "The response could not be produced or serialized as intended.",
		DebuggingSteps: []string{
			"Check the response payload for values that cannot be serialized",
			"Verify the response writer was not already committed",
		},
		LearningTips: []string{
			"Encode the response before writing headers so failures can still change the status code",
		},
		RelatedConcepts: []string{"JSON serialization", "response lifecycle"},
	},
	CategoryConfiguration: {
		Troubleshooting: "The service configuration is missing, malformed or inconsistent.",
		DebuggingSteps: []string{
			"Print the effective configuration and compare it with the expected values",
			"Check environment variables and the config file search path",
		},
		LearningTips: []string{
			"Fail fast on configuration errors; a misconfigured service should not serve traffic",
		},
		RelatedConcepts: []string{"configuration management", "environment variables", "fail-fast startup"},
	},
}

// TemplateFor returns the deterministic guidance template for the category.
// Unknown categories fall back to the Server template.
func TemplateFor(c Category) Guidance {
	if tmpl, ok := guidanceTemplates[c]; ok {
		return tmpl
	}
	return guidanceTemplates[CategoryServer]
}
