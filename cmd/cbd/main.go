/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"os"

	"github.com/cristianoliveira/cbd-helper/cmd"
	"github.com/cristianoliveira/cbd-helper/internal/colors"
)

func main() {
	colors.StructuredInfo("startup", "main", "started", nil, "", nil)
	err := cmd.Execute()
	if closeErr := runtimeClient.Close(); closeErr != nil {
		colors.StructuredWarn("startup", "close", "failed", closeErr, "", nil)
	}
	if err != nil {
		colors.StructuredError("startup", "main", "failed", err, "", nil)
		os.Exit(1)
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
}
