// Package main provides buildersig, a command line tool signing and verifying
// builder API messages under per-chain builder domains.
package main

import (
	"fmt"
	"os"

	"github.com/prysmaticlabs/buildersig/cmd"
	"github.com/prysmaticlabs/buildersig/cmd/buildersig/domain"
	"github.com/prysmaticlabs/buildersig/cmd/buildersig/keys"
	"github.com/prysmaticlabs/buildersig/cmd/buildersig/registration"
	"github.com/prysmaticlabs/buildersig/io/logs"
	"github.com/prysmaticlabs/buildersig/monitoring/prometheus"
	_ "github.com/prysmaticlabs/buildersig/runtime/maxprocs"
	"github.com/prysmaticlabs/buildersig/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var appFlags = []cli.Flag{
	cmd.VerbosityFlag,
	cmd.LogFormat,
	cmd.LogFileName,
	cmd.MetricsFileFlag,
}

func newApp() *cli.App {
	app := &cli.App{}
	app.Name = "buildersig"
	app.Usage = "Sign and verify builder API messages"
	app.Version = version.GetVersion()
	app.Flags = appFlags
	app.Commands = append(app.Commands, keys.Commands...)
	app.Commands = append(app.Commands, domain.Commands...)
	app.Commands = append(app.Commands, registration.Commands...)
	app.Before = before
	app.After = after
	return app
}

func before(ctx *cli.Context) error {
	logFileName := ctx.String(cmd.LogFileName.Name)
	if err := logs.SetFormatter(ctx.String(cmd.LogFormat.Name), logFileName != ""); err != nil {
		return err
	}
	level, err := logrus.ParseLevel(ctx.String(cmd.VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	if logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	logrus.AddHook(prometheus.NewLogrusCollector())
	return nil
}

func after(ctx *cli.Context) error {
	path := ctx.String(cmd.MetricsFileFlag.Name)
	if path == "" {
		return nil
	}
	if err := prometheus.WriteTextfile(path); err != nil {
		return err
	}
	log.WithField("path", path).Debug("Wrote metrics file")
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
