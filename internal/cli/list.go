package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available capabilities",
	Long:  `List every function the catalog can generate, with the packages it requires.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a capability for display.
type listEntry struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Summary  string   `json:"summary"`
	Packages []string `json:"packages"`
	Default  bool     `json:"default"`
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, c := range reg.All() {
		entry := listEntry{
			Name:    c.Name,
			Label:   c.Label,
			Summary: c.Doc.Summary,
			Default: c.Default,
		}
		for _, p := range c.Packages {
			entry.Packages = append(entry.Packages, p.InstallSpec())
		}
		entries = append(entries, entry)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tDESCRIPTION\tPACKAGES")
	for _, e := range entries {
		def := "-"
		if e.Default {
			def = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, def, e.Label, strings.Join(e.Packages, ", "))
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
