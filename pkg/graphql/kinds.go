package graphql

// Identifier strings used by the Paw export format to tag dynamic
// values inside a variables payload.
const (
	// envVariableIdentifier marks a reference to an environment
	// variable, the only kind resolvable from captured data.
	envVariableIdentifier = "com.luckymarmot.EnvironmentVariableDynamicValue"

	// envVariableDataKey is the data field carrying the id of the
	// referenced environment variable.
	envVariableDataKey = "environmentVariable"
)

// unsupportedKinds maps every dynamic-value identifier that cannot be
// resolved from captured data to the display name used in its
// placeholder text.
var unsupportedKinds = map[string]string{
	"com.luckymarmot.RequestVariableDynamicValue":        "Request Variable",
	"com.luckymarmot.LocalValueDynamicValue":             "Local Value",
	"com.luckymarmot.HashDynamicValue":                   "Hash",
	"com.luckymarmot.CompressionDynamicValue":            "Compression",
	"com.luckymarmot.HMACDynamicValue":                   "HMAC",
	"com.luckymarmot.BasicAuthDynamicValue":              "Basic Auth",
	"com.luckymarmot.EscapeSequenceDynamicValue":         "Escape Sequence",
	"com.luckymarmot.PawExtensions.S3HeaderDynamicValue": "S3 Header",
	"com.luckymarmot.CustomDynamicValue":                 "Custom",
	"com.luckymarmot.JSONDynamicValue":                   "JSON",
	"com.luckymarmot.FileDynamicValue":                   "File",
}

// unsupportedPlaceholder builds the stand-in text substituted for a
// recognized but unresolvable dynamic value.
func unsupportedPlaceholder(name string) string {
	return "[" + name + " is not yet supported.]"
}
