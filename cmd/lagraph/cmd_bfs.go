package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lagraph/bfs"
)

func newBFSCmd(a *app) *cobra.Command {
	var (
		edges, source, dest string
		relations           []string
		maxLevel            int
		parents             bool
	)
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Print the BFS level (and parent) of every reachable vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := loadEdgeList(edges, a.cfg.DefaultRelation)
			if err != nil {
				return err
			}
			src, err := g.VertexIndex(source)
			if err != nil {
				return fmt.Errorf("--source: %w", err)
			}
			v, err := g.Views(relations...)
			if err != nil {
				return err
			}

			opts := append(a.traversalOptions(),
				bfs.WithTranspose(v.AT),
				bfs.WithDegree(v.Degree),
				bfs.WithParent(parents),
				bfs.WithMaxLevel(maxLevel),
			)
			if dest != "" {
				dst, err := g.VertexIndex(dest)
				if err != nil {
					return fmt.Errorf("--dest: %w", err)
				}
				opts = append(opts, bfs.WithDestination(dst))
			}

			res, err := bfs.Run(v.A, src, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, vx := range g.Vertices() {
				lvl, ok := res.LevelOf(vx.Index)
				if !ok {
					continue
				}
				if !parents {
					fmt.Fprintf(out, "%s\t%d\n", vx.ID, lvl)
					continue
				}
				p, _ := res.ParentOf(vx.Index)
				pid, err := g.VertexID(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", vx.ID, lvl, pid)
			}
			a.log.WithFields(logrus.Fields{
				"visited":     res.Stats.Visited,
				"levels":      res.Stats.Levels,
				"push_levels": res.Stats.PushLevels,
				"pull_levels": res.Stats.PullLevels,
				"switches":    res.Stats.Switches,
			}).Info("bfs complete")

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&edges, "edges", "", "edge-list file")
	f.StringVar(&source, "source", "", "source vertex ID")
	f.StringVar(&dest, "dest", "", "stop once this vertex is reached")
	f.IntVar(&maxLevel, "max-level", 0, "stop after this level (0 = no limit)")
	f.StringArrayVar(&relations, "relation", nil, "follow only this relation (repeatable)")
	f.BoolVar(&parents, "parents", false, "also print each vertex's BFS parent")
	_ = cmd.MarkFlagRequired("edges")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
