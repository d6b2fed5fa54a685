package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lagraph/shortestpath"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		edges, source, dest string
		relations           []string
		minHops, maxHops    int
	)
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print a shortest path between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadEdgeList(edges, a.cfg.DefaultRelation)
			if err != nil {
				return err
			}

			p, err := shortestpath.Find(g, source, dest,
				shortestpath.WithRelations(relations...),
				shortestpath.WithMinHops(minHops),
				shortestpath.WithMaxHops(maxHops),
				shortestpath.WithBFSOptions(a.traversalOptions()...),
			)
			out := cmd.OutOrStdout()
			switch {
			case errors.Is(err, shortestpath.ErrNoPath):
				fmt.Fprintln(out, "no path")
				return nil
			case err != nil:
				return err
			case p.Len() == 0:
				fmt.Fprintln(out, source)
			default:
				fmt.Fprintln(out, p)
			}
			a.log.WithField("hops", p.Len()).Info("path found")

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&edges, "edges", "", "edge-list file")
	f.StringVar(&source, "source", "", "source vertex ID")
	f.StringVar(&dest, "dest", "", "destination vertex ID")
	f.IntVar(&minHops, "min-hops", 0, "reject shorter paths")
	f.IntVar(&maxHops, "max-hops", 0, "give up beyond this many hops (0 = no limit)")
	f.StringArrayVar(&relations, "relation", nil, "follow only this relation (repeatable)")
	_ = cmd.MarkFlagRequired("edges")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}
