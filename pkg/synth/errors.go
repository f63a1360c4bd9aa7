package synth

import "fmt"

// ConfigError reports a rejected configuration value. It is returned
// eagerly by the call that introduced the value, never deferred to
// Compile.
type ConfigError struct {
	Op    string      // operation that rejected the value, e.g. "SetLevel"
	Track string      // offending track name, empty if not track-scoped
	Field string      // offending field, e.g. "level"
	Got   interface{} // value received
	Want  string      // constraint, e.g. "in [0, 1]"
}

func (e *ConfigError) Error() string {
	if e.Track != "" {
		return fmt.Sprintf("%s: track %q: %s = %v, want %s", e.Op, e.Track, e.Field, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: %s = %v, want %s", e.Op, e.Field, e.Got, e.Want)
}

// DuplicateNameError reports an AddTrack call reusing an existing name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("AddTrack: track %q already exists", e.Name)
}

// NotFoundError reports an operation on an unknown track name.
type NotFoundError struct {
	Op   string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no track named %q", e.Op, e.Name)
}

// RenderError reports a non-finite sample produced during compilation.
type RenderError struct {
	Track  string
	Sample int
	Value  float64
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("compile: track %q: non-finite sample %g at index %d", e.Track, e.Value, e.Sample)
}
