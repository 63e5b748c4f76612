package leveldata

import "fmt"

// LevelDataError reports a malformed or incomplete level descriptor. It is
// raised while loading, never mid-frame.
type LevelDataError struct {
	Source string // file path, empty for in-memory descriptors
	Field  string
	Reason string
}

func (e *LevelDataError) Error() string {
	switch {
	case e.Source != "" && e.Field != "":
		return fmt.Sprintf("level data %s: %s: %s", e.Source, e.Field, e.Reason)
	case e.Source != "":
		return fmt.Sprintf("level data %s: %s", e.Source, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("level data: %s: %s", e.Field, e.Reason)
	}
	return "level data: " + e.Reason
}

func fieldError(field, format string, args ...any) *LevelDataError {
	return &LevelDataError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
