package main

import (
	"github.com/katalvlaran/seqlath/internal/render"
	"github.com/katalvlaran/seqlath/lcs"
	"github.com/spf13/cobra"
)

var eqID = lcs.Equal[int]()

func (a *app) lengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "length A B",
		Short: "Print the length of the longest common subsequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPair(args)
			if err != nil {
				return err
			}
			n, err := lcs.Length(p.ids1, p.ids2, eqID)
			if err != nil {
				return err
			}
			return a.renderer(cmd).Render(render.LengthResult{Length: n, First: len(p.first), Second: len(p.second)})
		},
	}
}

func (a *app) oneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "one A B",
		Short: "Print one longest common subsequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPair(args)
			if err != nil {
				return err
			}
			matches, err := lcs.ComputeOneMatches(p.ids1, p.ids2, eqID)
			if err != nil {
				return err
			}
			toks := make([]string, len(matches))
			for i, m := range matches {
				toks[i] = p.first[m.First]
			}
			return a.renderer(cmd).Render(render.SolutionResult{
				Length:  len(toks),
				Tokens:  toks,
				Matches: matches,
				Sep:     render.Separator(a.opts.Mode),
			})
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all A B",
		Short: "Print every distinct longest common subsequence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPair(args)
			if err != nil {
				return err
			}
			sol, err := lcs.EnumerateAll(p.ids1, p.ids2, eqID)
			if err != nil {
				return err
			}

			limit := a.cfg.Output.Limit
			res := render.AllResult{Length: sol.Len(), Solutions: [][]string{}, Sep: render.Separator(a.opts.Mode)}
			it := sol.Iterator()
			defer it.Close()
			for it.Next() {
				if limit > 0 && len(res.Solutions) == limit {
					res.Truncated = true
					break
				}
				ids, err := it.Current()
				if err != nil {
					return err
				}
				res.Solutions = append(res.Solutions, p.tokens(ids))
			}
			res.Count = len(res.Solutions)
			a.log.WithField("count", res.Count).WithField("pending", it.Pending()).Debug("lcs enumeration done")
			return a.renderer(cmd).Render(res)
		},
	}
	cmd.Flags().IntVarP(&a.limit, "limit", "n", 0, "stop after N solutions (0 = all)")
	return cmd
}

func (a *app) diffCmd() *cobra.Command {
	var (
		unified      bool
		contextLines int
	)
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Print the edit script from A to B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPair(args)
			if err != nil {
				return err
			}
			matches, err := lcs.ComputeOneMatches(p.ids1, p.ids2, eqID)
			if err != nil {
				return err
			}
			es, err := lcs.NewEditScript(len(p.first), len(p.second), matches)
			if err != nil {
				return err
			}
			if unified {
				fd := render.NewFileDiff(es, p.first, p.second, p.names[0], p.names[1], contextLines)
				return render.WriteUnified(cmd.OutOrStdout(), fd)
			}
			return a.renderer(cmd).Render(render.NewDiffResult(es, p.first, p.second))
		},
	}
	cmd.Flags().BoolVarP(&unified, "unified", "u", false, "print a unified diff")
	cmd.Flags().IntVarP(&contextLines, "context", "U", render.DefaultContext, "unchanged tokens around each hunk")
	return cmd
}

func (a *app) alignCmd() *cobra.Command {
	var gap string
	cmd := &cobra.Command{
		Use:   "align A B",
		Short: "Print A and B as two gapped rows",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPair(args)
			if err != nil {
				return err
			}
			matches, err := lcs.ComputeOneMatches(p.ids1, p.ids2, eqID)
			if err != nil {
				return err
			}
			top, bottom, err := lcs.Align(lcs.Slice[string](p.first), lcs.Slice[string](p.second), matches, gap, gap)
			if err != nil {
				return err
			}
			return a.renderer(cmd).Render(render.AlignResult{First: top, Second: bottom, Gap: gap})
		},
	}
	cmd.Flags().StringVar(&gap, "gap", "-", "gap symbol")
	return cmd
}

func (a *app) matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix A B",
		Short: "Print the direction matrix used to enumerate all solutions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPair(args)
			if err != nil {
				return err
			}
			sol, err := lcs.EnumerateAll(p.ids1, p.ids2, eqID)
			if err != nil {
				return err
			}
			return a.renderer(cmd).Render(render.NewMatrixResult(sol.Matrix()))
		},
	}
}
