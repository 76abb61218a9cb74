package constant

// Run context keys
const (
	RunIDKey = "run_id"
)

// Defaults
const (
	// DefaultBody is used when no --body flag is supplied.
	DefaultBody = "Je suis intéressé(e) à participer à votre étude. " +
		"Vous pouvez me contacter à cette adresse e-mail ou " +
		"m'appeler au [votre numéro]."

	DefaultOutputFile = "email_qr.png"
)

// Function/Context names
const (
	// Domain context names
	CtxDomain    = "domain"
	CtxBuildLink = "BuildMailtoLink"
	CtxGenerate  = "Generate"

	// Pipeline step names
	CtxOverlay = "Overlay"
	CtxShow    = "Show"

	// General context names
	CtxMain = "Main"
)

// Data field keys
const (
	// Service data fields
	DataService    = "service"
	DataEmail      = "email"
	DataSubject    = "subject"
	DataBodySet    = "body_set"
	DataLink       = "link"
	DataLinkLength = "link_length"
	DataLogoPath   = "logo_path"
	DataOutputPath = "output_path"

	// Image data fields
	DataWidth  = "width"
	DataHeight = "height"

	// General data fields
	DataEnvironment = "environment"
)

// Error message constants
const (
	ErrMissingEmail   = "missing required flag: --email"
	ErrMissingSubject = "missing required flag: --subject"
	ErrMissingLogo    = "missing required flag: --logo"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRunIDKey        = "run_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Message constants for application
const (
	MsgApplicationStarting = "Application starting"
	MsgBuildingLink        = "Building mailto link"
	MsgLinkBuilt           = "Mailto link built"
	MsgEncodingQR          = "Encoding QR code"
	MsgQREncoded           = "QR code encoded"
	MsgOverlayingLogo      = "Overlaying logo"
	MsgLogoOverlaid        = "Logo overlaid"
	MsgLogoNotFound        = "Logo file not found. Proceeding without a logo."
	MsgSavingImage         = "Saving QR code image"
	MsgImageSaved          = "QR code image saved"
	MsgOpeningViewer       = "Opening image viewer"
	MsgViewerFailed        = "Image viewer could not be started"
	MsgGenerateFailed      = "QR code generation failed"
	MsgSavedConfirmation   = "QR code saved as %s\n"
)
