package replmeta_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/replmeta/pkg/replmeta"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, replmeta.ExitSuccess},
		{"unknown flag", errors.New("unknown flag: --foo"), replmeta.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), replmeta.ExitUsageError},
		{"invalid config", fmt.Errorf("loading: %w", replmeta.ErrInvalidConfig), replmeta.ExitConfigError},
		{"invalid rule", fmt.Errorf("rule: %w", replmeta.ErrInvalidRule), replmeta.ExitConfigError},
		{"validation failed", replmeta.ErrValidationFailed, replmeta.ExitValidationFailed},
		{"package not found", fmt.Errorf("open: %w", replmeta.ErrPackageNotFound), replmeta.ExitPackageNotFound},
		{"general error", errors.New("something went wrong"), replmeta.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := replmeta.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
