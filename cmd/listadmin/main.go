package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/listadmin/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	var opt cli.Options
	flags := pflag.NewFlagSet("listadmin", pflag.ContinueOnError)
	flags.StringVar(&opt.ConfigPath, "config", "", "config file path")
	flags.StringVar(&opt.Theme, "theme", "", "color theme: classic, neon or mono")
	flags.StringVar(&opt.LogFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opt.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.SetInterspersed(false)
	flags.Usage = cli.PrintHelp
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, flags.Args(), opt)
	stop()
	os.Exit(code)
}
