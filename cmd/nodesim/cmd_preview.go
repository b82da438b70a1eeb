package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"go-node-defense/internal/component"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/graph"
	"go-node-defense/internal/stats"
	"go-node-defense/internal/types"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <node>",
		Short: "Show what buying a node would change",
		Long: `Show the stat differences buying a node would cause.

Nodes listed with --active are marked active first (power is ignored),
so previews deeper in the tree can be inspected.

Examples:
  nodesim preview A
  nodesim preview AT1 --active A,A3,AT`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			active, _ := cmd.Flags().GetStringSlice("active")

			_, catalog, err := loadSession(cmd)
			if err != nil {
				return err
			}
			nodes := make([]*component.Node, 0, len(catalog.Nodes))
			for _, def := range catalog.Nodes {
				nodes = append(nodes, component.NewNode(def))
			}
			for _, id := range active {
				n := graph.Find(types.NodeID(id), nodes)
				if n == nil {
					return fmt.Errorf("node %q not found in catalog", id)
				}
				n.Active = true
			}

			id := types.NodeID(args[0])
			target := graph.Find(id, nodes)
			if target == nil {
				return fmt.Errorf("node %q not found in catalog", id)
			}
			initial, err := catalog.Initial()
			if err != nil {
				return err
			}
			resolver := stats.NewResolver(component.EdgesFromDefs(catalog.Edges), initial)
			current := resolver.Resolve(nodes)
			diff := resolver.Preview(id, nodes, current)
			cost := stats.Cost(current, target)

			report := map[string]map[string]float64{"global": namedStats(diff.Global.NonZero())}
			for nid, b := range diff.PerNode {
				if changes := b.NonZero(); len(changes) > 0 {
					report[string(nid)] = namedStats(changes)
				}
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"node":    id,
					"cost":    cost,
					"changes": report,
				})
			}
			fmt.Fprintf(out, "%s cost %d\n", id, cost)
			scopes := make([]string, 0, len(report))
			for scope := range report {
				scopes = append(scopes, scope)
			}
			sort.Strings(scopes)
			for _, scope := range scopes {
				names := make([]string, 0, len(report[scope]))
				for name := range report[scope] {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					fmt.Fprintf(out, "  %-8s %-32s %+g\n", scope, name, report[scope][name])
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("active", nil, "Nodes to mark active before previewing")
	return cmd
}

func namedStats(values map[defs.StatKey]float64) map[string]float64 {
	out := make(map[string]float64, len(values))
	for k, v := range values {
		out[k.String()] = v
	}
	return out
}
