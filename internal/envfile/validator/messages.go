package validator

import "fmt"

// Message texts. Downstream scripts match on these, so they must not change.
const (
	msgServerNotMapping = "Server entry must be a dictionary"
	msgAbsolutePath     = "%s must be an absolute path"
	msgMissingField     = "Missing required field: %s"
	msgWrongType        = "Field %s must be of type %s"
	msgServerMissing    = "Server missing '%s' field"
	msgServerNotString  = "Server '%s' must be a string"
	msgServerPrefix     = "Server %d: %s"
)

func missingField(name string) string {
	return fmt.Sprintf(msgMissingField, name)
}

func wrongType(name, typeName string) string {
	return fmt.Sprintf(msgWrongType, name, typeName)
}

func serverMissing(name string) string {
	return fmt.Sprintf(msgServerMissing, name)
}

func serverNotString(name string) string {
	return fmt.Sprintf(msgServerNotString, name)
}

func notAbsolute(label string) string {
	return fmt.Sprintf(msgAbsolutePath, label)
}

// serverMessage prefixes msg with the 1-based ordinal of the server entry.
func serverMessage(ordinal int, msg string) string {
	return fmt.Sprintf(msgServerPrefix, ordinal, msg)
}
