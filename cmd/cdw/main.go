package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isDebug()}

	root := cli.NewRootCmd(ctx, opts)
	if err := root.ExecuteContext(ctx); err != nil {
		code, reported := cli.MapExitCode(err)
		if !reported {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(int(code))
	}
}

func isDebug() bool {
	v := os.Getenv(domain.EnvDebug)
	return strings.EqualFold(v, "1") || strings.EqualFold(v, "true")
}
