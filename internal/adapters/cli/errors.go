package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrescamacho/factory-planner-go/internal/domain/production"
)

const (
	exitUserError = 1
	exitFailure   = 2
)

// reportedError marks a failure whose details were already written to the output
type reportedError struct {
	failed int
	total  int
	cause  error
}

func (e *reportedError) Error() string {
	return fmt.Sprintf("%d of %d inputs failed", e.failed, e.total)
}

func (e *reportedError) Unwrap() error {
	return e.cause
}

// renderError formats err for the terminal, prefixed by its kind
func renderError(err error) string {
	kind := production.KindOf(err)

	var chainErr *production.RecipeChainError
	if errors.As(err, &chainErr) {
		var b strings.Builder
		fmt.Fprintf(&b, "error [%s]: %d recipe(s) could not be satisfied (needs %s)",
			kind, len(chainErr.Unprocessed), strings.Join(chainErr.MissingMaterials(), ", "))
		for _, name := range chainErr.Unprocessed {
			fmt.Fprintf(&b, "\n  %s: missing %s", name, strings.Join(chainErr.Missing[name], ", "))
		}
		return b.String()
	}

	if kind == production.KindUnknown {
		return fmt.Sprintf("error: %v", err)
	}
	return fmt.Sprintf("error [%s]: %v", kind, err)
}

// exitCode maps user mistakes to 1 and everything else to 2
func exitCode(err error) int {
	if production.IsUserError(err) {
		return exitUserError
	}
	return exitFailure
}
