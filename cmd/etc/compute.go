package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/axiomhq/etc"
	"github.com/axiomhq/etc/lz76"
	"github.com/axiomhq/etc/sheet"
)

func newComputeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compute FILE",
		Short: "Compute ETC of one sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := a.readSequence(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := etc.Compute(seq, a.cfg.Options())
			if err != nil {
				return err
			}
			a.log.Info("computed", "length", len(seq), "etc", res.ETC, "netc", res.NETC)
			return a.writeResult(cmd, res)
		},
	}
}

func newJointCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "joint XFILE YFILE",
		Short: "Compute joint ETC of two equal-length sequences",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.readSequence(cmd, args[0])
			if err != nil {
				return err
			}
			y, err := a.readSequence(cmd, args[1])
			if err != nil {
				return err
			}
			res, err := etc.Compute2D(x, y, a.cfg.Options())
			if err != nil {
				return err
			}
			a.log.Info("computed joint", "length", len(x), "etc", res.ETC, "netc", res.NETC)
			return a.writeResult(cmd, res)
		},
	}
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance AFILE BFILE",
		Short: "Compute the ETC distance between two sequences",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.readSequence(cmd, args[0])
			if err != nil {
				return err
			}
			y, err := a.readSequence(cmd, args[1])
			if err != nil {
				return err
			}
			d, err := etc.Distance(x, y, a.cfg.Options())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "distance\t%g\n", d)
			return err
		},
	}
}

func newLZCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lz FILE",
		Short: "Compute Lempel-Ziv (1976) complexity of one sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := a.readSequence(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "lz76\t%d\nnormalized\t%g\n",
				lz76.Complexity(seq), lz76.Normalized(seq))
			return err
		},
	}
}

// writeResult prints ETC and NETC to stdout and, for a verbose run, the
// trajectory to --out in the configured format.
func (a *app) writeResult(cmd *cobra.Command, res etc.Result) error {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "etc\t%d\nnetc\t%g\n", res.ETC, res.NETC); err != nil {
		return err
	}
	if res.Trajectory == nil {
		return nil
	}
	if a.out == "" && a.cfg.Format == "xlsx" {
		return fmt.Errorf("--format xlsx needs --out")
	}
	w, closeOut, err := a.output(cmd)
	if err != nil {
		return err
	}
	if err := writeTrajectory(w, res.Trajectory, a.cfg.Format); err != nil {
		_ = closeOut()
		return err
	}
	return closeOut()
}

func writeTrajectory(w io.Writer, t *etc.Trajectory, format string) error {
	if format == "xlsx" {
		return sheet.WriteTrajectory(w, t)
	}
	_, err := t.WriteTo(w)
	return err
}
