package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate an upgrade catalog",
		Long: `Validate an upgrade catalog.

This command checks for:
  - Unknown stat names and malformed effects
  - Duplicate node ids and edges to unknown nodes
  - Nodes with more than one parent
  - Cycles and catalogs without a root

Examples:
  nodesim validate                         # Validate the embedded catalog
  nodesim validate --catalog tree.yaml     # Validate a custom catalog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			_, catalog, err := loadSession(cmd)
			if err != nil {
				return fmt.Errorf("catalog is invalid: %w", err)
			}
			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]int{
					"nodes": len(catalog.Nodes),
					"edges": len(catalog.Edges),
				})
			}
			fmt.Fprintf(out, "catalog ok: %d nodes, %d edges\n", len(catalog.Nodes), len(catalog.Edges))
			return nil
		},
	}
}
