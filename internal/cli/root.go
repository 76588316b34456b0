package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.current == nil {
		return "guest"
	}
	return fmt.Sprintf("(%s)", a.current.Username)
}

// Root runs the interactive loop over stdin until EOF or exit.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to Recipe Keeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
