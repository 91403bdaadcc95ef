package types

// redactedPlaceholder replaces secret values in logs and serialized output.
const redactedPlaceholder = "***REDACTED***"

var redactedJSON = []byte(`"***REDACTED***"`)

// SecretString holds a sensitive value such as the Weatherbit API key. It
// overrides String() and MarshalJSON() so that config dumps, fmt output, and
// structured log entries never leak the plaintext.
//
// Call Unmask() at the point where the raw value is genuinely needed, e.g.
// when the fetch collaborator builds its request.
type SecretString string

// String returns a redacted placeholder instead of the raw value.
func (s SecretString) String() string {
	return redactedPlaceholder
}

// MarshalJSON returns the redacted placeholder as a JSON string.
func (s SecretString) MarshalJSON() ([]byte, error) {
	return redactedJSON, nil
}

// Unmask returns the raw plaintext value.
func (s SecretString) Unmask() string {
	return string(s)
}
