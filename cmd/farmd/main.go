// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Degis-Insurance/Degis-Core-sub000/api"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/admin"
	"github.com/Degis-Insurance/Degis-Core-sub000/log"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
	"github.com/Degis-Insurance/Degis-Core-sub000/lvldb"
	"github.com/Degis-Insurance/Degis-Core-sub000/metrics"
)

var (
	version   string
	gitCommit string
	gitTag    string

	flags = []cli.Flag{
		configFlag,
		dataDirFlag,
		persistFlag,
		cacheFlag,
		apiAddrFlag,
		apiCorsFlag,
		apiTimeoutFlag,
		apiBacktraceLimitFlag,
		apiLogsLimitFlag,
		apiSlowQueriesThresholdFlag,
		apiLog5xxErrorsFlag,
		enableAPILogsFlag,
		verbosityFlag,
		jsonLogsFlag,
		enableMetricsFlag,
		metricsAddrFlag,
		enableAdminFlag,
		adminAddrFlag,
	}
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Farmd",
		Usage:     "Yield distribution ledger daemon",
		Copyright: "2025 The VeChainThor developers",
		Flags:     flags,
		Action:    defaultAction,
		Commands: []cli.Command{
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(_ *cli.Context) error {
					fmt.Println(fullVersion())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	exitSignal := handleExitSignal()

	defer func() { log.Info("exited") }()

	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return fmt.Errorf("parse verbosity flag: %w", err)
	}
	logLevel := initLogger(lvl, ctx.Bool(jsonLogsFlag.Name))

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	cfg, source := selectGenesis(ctx)

	var (
		mainDB  *lvldb.LevelDB
		logDB   *logdb.LogDB
		dataDir = "memory"
	)
	if ctx.Bool(persistFlag.Name) {
		dataDir = makeInstanceDir(ctx, cfg)
		mainDB = openMainDB(ctx, dataDir)
		logDB = openLogDB(dataDir)
	} else {
		mainDB = openMemMainDB()
		logDB = openMemLogDB()
	}
	defer func() { log.Info("closing main database..."); mainDB.Close() }()
	defer func() { log.Info("closing log database..."); logDB.Close() }()

	l := initLedger(cfg, mainDB, logDB)

	var apiLogs atomic.Bool
	apiLogs.Store(ctx.Bool(enableAPILogsFlag.Name))

	apiHandler, closeSubs := api.New(l, api.Options{
		AllowedOrigins:       ctx.String(apiCorsFlag.Name),
		BacktraceLimit:       ctx.Uint64(apiBacktraceLimitFlag.Name),
		EnableReqLogger:      &apiLogs,
		SlowQueriesThreshold: time.Duration(ctx.Uint64(apiSlowQueriesThresholdFlag.Name)) * time.Millisecond,
		Log5xxErrors:         ctx.Bool(apiLog5xxErrorsFlag.Name),
		EnableMetrics:        ctx.Bool(enableMetricsFlag.Name),
		LogsLimit:            ctx.Uint64(apiLogsLimitFlag.Name),
	})

	g, gctx := errgroup.WithContext(exitSignal)

	apiListener := listen("API", ctx.String(apiAddrFlag.Name))
	apiSrv := newAPIServer(ctx, apiHandler)
	g.Go(func() error { return serve(apiSrv, apiListener) })

	if ctx.Bool(enableMetricsFlag.Name) {
		metricsListener := listen("metrics", ctx.String(metricsAddrFlag.Name))
		metricsSrv := newMetricsServer()
		g.Go(func() error { return serve(metricsSrv, metricsListener) })
		defer func() { log.Info("stopping metrics server..."); metricsSrv.Close() }()
		log.Info("metrics server started", "url", "http://"+metricsListener.Addr().String()+"/metrics")
	}

	if ctx.Bool(enableAdminFlag.Name) {
		adminURL, closeAdmin, err := admin.StartServer(ctx.String(adminAddrFlag.Name), logLevel, &apiLogs, l)
		if err != nil {
			return fmt.Errorf("unable to start admin server: %w", err)
		}
		defer func() { log.Info("stopping admin server..."); closeAdmin() }()
		log.Info("admin server started", "url", adminURL)
	}

	printStartupMessage(source, cfg, l, dataDir, "http://"+apiListener.Addr().String()+"/")

	g.Go(func() error {
		<-gctx.Done()
		log.Info("stopping API server...")
		closeSubs()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return apiSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
