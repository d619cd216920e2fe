package cli

import (
	"context"
	"fmt"
	"os"
)

// Execute runs the pwtext command with the process arguments and returns the exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCommand()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "pwtext: %v\n", err)

		return 1
	}

	return 0
}
