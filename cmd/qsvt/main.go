// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/qsvt/cmd/qsvt/commands"
	"github.com/katalvlaran/qsvt/logger"
)

func main() {
	root := commands.NewRootCmd()
	err := root.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
