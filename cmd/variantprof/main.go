// Command variantprof drives a mixed variant workload for profiling.
package main

import (
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"
)

var (
	iterations int
	memProfile string
	pprofAddr  string
	hold       time.Duration
	noFastPath bool
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "variantprof",
		Short: "Run a variant workload and write a heap profile",
		RunE:  runProfile,
	}
)

func init() {
	rootCmd.Flags().IntVarP(&iterations, "iterations", "n", 10000, "workload rounds")
	rootCmd.Flags().StringVar(&memProfile, "memprofile", "mem.prof", "heap profile output, empty to skip")
	rootCmd.Flags().StringVar(&pprofAddr, "pprof", "", "serve net/http/pprof on this address")
	rootCmd.Flags().DurationVar(&hold, "hold", 0, "keep the pprof server up this long after the run")
	rootCmd.Flags().BoolVar(&noFastPath, "no-fast-path", false, "route trivial sets through the dispatch table")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log set construction")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProfile(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if pprofAddr != "" {
		go func() {
			logger.Error("pprof server stopped", "error", http.ListenAndServe(pprofAddr, nil))
		}()
	}

	var f *os.File
	if memProfile != "" {
		var err error
		if f, err = os.Create(memProfile); err != nil {
			return err
		}
		defer f.Close()
		runtime.MemProfileRate = 1
	}

	w := newWorkload(logger, noFastPath)
	start := time.Now()
	stats, err := w.run(iterations)
	if err != nil {
		return err
	}
	logger.Info("workload done",
		"iterations", iterations,
		"elapsed", time.Since(start),
		"emplaced", stats.emplaced,
		"swapped", stats.swapped,
		"visited", stats.visited,
		"checksum", stats.checksum)

	if f != nil {
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
		logger.Info("heap profile written", "path", memProfile)
	}
	if pprofAddr != "" && hold > 0 {
		time.Sleep(hold)
	}
	return nil
}
