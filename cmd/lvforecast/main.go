// SPDX-License-Identifier: MIT

// Command lvforecast runs the forecast jobs listed in a YAML file and writes
// a JSON report.
//
//	lvforecast -config jobs.yaml [-out report.json]
//	lvforecast -init jobs.yaml
//
// Logging is controlled by LVFORECAST_LOG_LEVEL and LVFORECAST_LOG_DEV;
// LVFORECAST_OUTPUT is the default for -out. The exit status is 1 when any
// job fails and 2 on usage or configuration errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvforecast/internal/config"
	"github.com/katalvlaran/lvforecast/internal/job"
	"github.com/katalvlaran/lvforecast/internal/logging"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	defaultJobs = "jobs.yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env := config.LoadEnvOrDefault()

	fs := flag.NewFlagSet("lvforecast", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jobsPath := fs.String("config", defaultJobs, "job file (YAML)")
	outPath := fs.String("out", env.Output, "report file; stdout when empty")
	initPath := fs.String("init", "", "write an example job file to this path and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	log, err := logging.New(env.Logging())
	if err != nil {
		fmt.Fprintf(stderr, "lvforecast: logger: %v\n", err)
		log = logging.NewNop()
	}
	defer func() { _ = log.Sync() }()

	if *initPath != "" {
		if err = config.Example().Save(*initPath); err != nil {
			log.Error("init failed", zap.String("path", *initPath), zap.Error(err))
			return exitUsage
		}
		log.Info("example job file written", zap.String("path", *initPath))
		return exitOK
	}

	jobs, err := config.Load(*jobsPath)
	if err != nil {
		log.Error("cannot load job file", zap.String("path", *jobsPath), zap.Error(err))
		fmt.Fprintf(stderr, "lvforecast: %v\n", err)
		return exitUsage
	}

	rep := job.NewRunner(log).Run(ctx, jobs.Jobs)

	if *outPath == "" {
		err = rep.Write(stdout)
	} else {
		err = rep.WriteFile(*outPath)
	}
	if err != nil {
		log.Error("cannot write report", zap.Error(err))
		return exitFailed
	}

	if rep.Failed > 0 {
		return exitFailed
	}

	return exitOK
}
