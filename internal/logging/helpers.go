package logging

import (
	"strings"

	"github.com/goliatone/go-cms-editor/pkg/interfaces"
)

// WithFields attaches fields through the FieldsLogger extension. Blank keys
// are dropped and the map is copied; loggers without the extension are
// returned as they are.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	clean := make(map[string]any, len(fields))
	for key, value := range fields {
		if key = strings.TrimSpace(key); key != "" {
			clean[key] = value
		}
	}
	if len(clean) == 0 {
		return logger
	}
	return fieldsLogger.WithFields(clean)
}
