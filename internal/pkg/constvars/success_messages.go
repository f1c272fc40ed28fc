package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Analysis messages
	AnalyzeResultSuccessMessage       = "exam result analyzed successfully"
	FindAnalysisSuccessMessage        = "get analysis result successfully"
	FindPatientAnalysesSuccessMessage = "get patient analysis results successfully"
	DeleteAnalysisSuccessMessage      = "analysis result deleted successfully"
	ListExamDomainsSuccessMessage     = "get exam domains successfully"

	// Result messages
	CreateResultSuccessMessage = "exam result created successfully"
	FindResultSuccessMessage   = "get exam result successfully"

	// Health messages
	HealthCheckSuccessMessage = "service is healthy"
)
