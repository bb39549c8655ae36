package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// RunFailureMessageFormat defines the single diagnostic line printed when a run fails.
const RunFailureMessageFormat = "❌  An error occurred: %v"

// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
const LoggerInitializationFailedMessageFormat = "unable to initialize logger: %w"
