package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/profile-scout/internal/catalog"
)

var categoriesPath string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the resolved category catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := categoriesPath
		if path == "" {
			path = cfg.Collect.CatalogPath
		}
		cats, err := catalog.Resolve(path)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tKEYWORDS\tTARGETS")
		for _, c := range cats {
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, strings.Join(c.Keywords, ", "), strings.Join(c.Targets, ", "))
		}
		return w.Flush()
	},
}

func init() {
	categoriesCmd.Flags().StringVar(&categoriesPath, "categories", "", "category catalog YAML path (default built-in)")
	rootCmd.AddCommand(categoriesCmd)
}
