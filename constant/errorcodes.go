package constant

// Domain service error codes
const (
	// Generate pipeline errors (1xx)
	ErrCodeEncode  = "SVC101"
	ErrCodeOverlay = "SVC102"
	ErrCodeSave    = "SVC103"
	ErrCodeShow    = "SVC104"

	// Recovered conditions (2xx)
	ErrCodeLogoAbsent = "SVC201"
)

// Application error codes
const (
	ErrCodeAppGenerate = "APP001"
)

// Error types for categorization
const (
	// Domain error types
	ErrTypeEncode  = "encode"
	ErrTypeOverlay = "overlay"
	ErrTypeOutput  = "output"
	ErrTypeViewer  = "viewer"

	// General error types
	ErrTypeApp = "application"
)
