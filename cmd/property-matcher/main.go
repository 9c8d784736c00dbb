// Package main provides the CLI entrypoint for property-matcher.
//
// property-matcher suggests alternatives for an invalid or unmapped property
// name the same way the library does when embedded in a data-mapping layer:
//   - Exact alias matches from a YAML alias table
//   - Case-insensitive Levenshtein matches within a distance threshold
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"property-matcher/internal/common"
	"property-matcher/match"
	"property-matcher/property"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "property-matcher",
		Short:        "Suggest alternatives for invalid property names",
		SilenceUsage: true,
	}

	root.AddCommand(newSuggestCmd())

	return root
}

func newSuggestCmd() *cobra.Command {
	var (
		maxDistance int
		dedupe      bool
		aliasFile   string
		typeName    string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "suggest <invalid-name> <property>...",
		Short: "Print a did-you-mean message for an invalid property name",
		Long: `Builds one writable property descriptor per listed property name,
optionally merges alias metadata from a YAML alias table, and prints the
rendered suggestion message.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			descs := make([]property.Descriptor, 0, len(args)-1)
			for _, name := range args[1:] {
				descs = append(descs, property.Descriptor{
					Name:  name,
					Field: &property.Member{Name: name},
					Write: &property.Member{Name: "Set" + name},
				})
			}

			if aliasFile != "" {
				table, err := property.LoadFile(aliasFile)
				if err != nil {
					return err
				}

				diags := table.Validate()
				for _, w := range diags.Warnings {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", w.Severity, w.String())
				}

				if diags.HasErrors() {
					return diags.Error()
				}

				if typeName == "" {
					if ta, ok := common.First(table.Types); ok {
						typeName = ta.Name
					}
				}

				descs = property.ApplyAliases(descs, table, typeName)
			}

			cfg := match.Config{MaxDistance: maxDistance, Deduplicate: dedupe}

			if verbose {
				for _, c := range match.Explain(target, descs, cfg) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\trule=%s distance=%d\n",
						c.Name, c.Rule, c.Distance)
				}
			}

			matches := match.ForPropertyWithConfig(target, descs, cfg)
			fmt.Fprintln(cmd.OutOrStdout(), matches.ErrorMessage())

			return nil
		},
	}

	cmd.Flags().IntVarP(&maxDistance, "max-distance", "d", match.DefaultMaxDistance,
		"maximum edit distance for name matches")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "remove duplicate candidates")
	cmd.Flags().StringVar(&aliasFile, "aliases", "", "path to a YAML alias table")
	cmd.Flags().StringVarP(&typeName, "type", "t", "",
		"type name to select from the alias table (default: first entry)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"print per-candidate rule and distance before the message")

	return cmd
}
