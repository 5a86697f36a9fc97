package replmeta

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Audit completed without blocking findings
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or rule text
	ExitValidationFailed = 13 // Findings at or above the fail-on severity
	ExitPackageNotFound  = 14 // Package directory or jcr_root not found
)

const (
	// DefaultAgentName is the distribution agent whose metadata properties carry no suffix.
	DefaultAgentName = "publish"

	// DefaultSeverity is applied to every diagnostic unless configured otherwise.
	DefaultSeverity = SeverityError

	// ContentChildName is the child node of pages and templates that carries their metadata.
	ContentChildName = "jcr:content"

	// JCRRootName is the element name of the root node in every DocView file.
	JCRRootName = "jcr:root"

	// UnknownPosition is printed for diagnostics that carry no line information.
	UnknownPosition = "unknown position"
)
