package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/apples/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every game mode that can be passed to play and window. The default mode is marked with *.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTITLE")
	for _, g := range games {
		marker := " "
		if g.ID == defaultMode {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\n", marker, g.ID, g.Title)
	}
	//nolint:errcheck // Writing to stdout
	w.Flush()

	fmt.Println()
	fmt.Println("Run 'apples play <id>' or 'apples window <id>' to play.")
}
