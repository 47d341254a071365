// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command selective inspects and evaluates task files.
//
//	selective deps FILE TARGET   print the keys TARGET may and must read
//	selective run FILE TARGET    evaluate TARGET and print the keys it read
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"code.hybscloud.com/selective/internal/taskfile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type options struct {
	logLevel string
	noColor  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "selective",
		Short:         "Inspect and evaluate task files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(newDepsCmd(opts), newRunCmd(opts))
	return root
}

func newLogger(dest io.Writer, opts *options) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", opts.logLevel)
	}
	return slog.New(tint.NewHandler(dest, &tint.Options{
		TimeFormat: time.TimeOnly,
		NoColor:    opts.noColor,
		Level:      level,
	})), nil
}

func newDepsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "deps FILE TARGET",
		Short: "Print the keys a task may read and the keys it always reads",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts)
			if err != nil {
				return err
			}
			f, err := taskfile.Load(args[0])
			if err != nil {
				return err
			}
			possible, err := f.Dependencies(args[1])
			if err != nil {
				return err
			}
			definite, err := f.DefiniteDependencies(args[1])
			if err != nil {
				return err
			}
			logger.Debug("dependencies", "target", args[1], "possible", len(possible), "definite", len(definite))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "possible: %s\n", strings.Join(possible, " "))
			fmt.Fprintf(w, "definite: %s\n", strings.Join(definite, " "))
			return nil
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE TARGET",
		Short: "Evaluate a task and print the keys it read",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts)
			if err != nil {
				return err
			}
			f, err := taskfile.Load(args[0])
			if err != nil {
				return err
			}
			r, err := taskfile.NewRunner(f, logger)
			if err != nil {
				return err
			}

			start := time.Now()
			v, err := r.Run(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			logger.Info("evaluated", "target", args[1], "elapsed", time.Since(start))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "value: %d\n", v)
			fmt.Fprintf(w, "touched: %s\n", strings.Join(r.Touched(), " "))
			return nil
		},
	}
}
