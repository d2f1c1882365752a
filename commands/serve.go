package commands

import (
	"fmt"
	"net/http"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/pivotal-cf/pwdkek/api"
	"github.com/pivotal-cf/pwdkek/config"
	"github.com/pivotal-cf/pwdkek/metrics"
)

type ServeCommand struct {
	ConfigFile string `long:"config-file" description:"path to config file" value-name:"PATH"`

	config.ServeConfig
}

func (command *ServeCommand) Execute(args []string) error {
	cfg := &config.ServeConfig{}
	if command.ConfigFile != "" {
		var err error
		cfg, err = config.LoadServeConfigFile(command.ConfigFile)
		if err != nil {
			return fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.Merge(&command.ServeConfig)
	cfg.SetDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}

	logger := lager.NewLogger("pwdkek-serve")
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, cfg.Level()))

	options := DatasetOptions{
		Path:  cfg.Dataset.Path,
		Index: cfg.Dataset.Index,
		Scale: cfg.Scale,
	}

	est, err := options.Estimator(logger)
	if err != nil {
		logger.Error("failed-to-load-dataset", err)
		return err
	}

	var (
		emitter        metrics.Emitter = metrics.NewNullEmitter()
		metricsHandler http.Handler
	)
	if !cfg.Metrics.Disabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		emitter = metrics.NewEmitter(registry)
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	handler, err := api.NewServer(logger, est, emitter, metricsHandler)
	if err != nil {
		return err
	}

	members := grouper.Members{
		{Name: "api", Runner: http_server.New(cfg.Address(), handler)},
	}

	runner := sigmon.New(grouper.NewParallel(os.Interrupt, members))

	serverLogger := logger.Session("server", lager.Data{
		"address": cfg.Address(),
	})
	serverLogger.Info("starting")

	err = <-ifrit.Invoke(runner).Wait()
	if err != nil {
		serverLogger.Error("failed", err)
		return err
	}

	serverLogger.Info("exited")
	return nil
}
