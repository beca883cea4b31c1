package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/commentview/cmd"
	"github.com/cristianoliveira/commentview/internal/colors"
)

func main() {
	err := cmd.Execute()
	if cerr := client.Close(); cerr != nil {
		colors.Debug(fmt.Sprintf("failed to close preference store: %v", cerr))
	}
	if err != nil {
		colors.Error(err.Error())
		os.Exit(1)
	}
}
