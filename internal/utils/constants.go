package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// ApplicationName is used for the command name and the configuration directory.
const ApplicationName = "peek"

// ConfigFileName is the name of the persisted preference file.
const ConfigFileName = "config.json"

// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes the fatal error reported by main.
const ApplicationExecutionFailedMessage = "peek failed"
