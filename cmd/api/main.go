package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"tubemap.nanjingmetro.org/internal/app"
	"tubemap.nanjingmetro.org/internal/appconf"
	"tubemap.nanjingmetro.org/internal/logging"
	"tubemap.nanjingmetro.org/internal/restapi"
	"tubemap.nanjingmetro.org/internal/tube"
	"tubemap.nanjingmetro.org/internal/webui"
)

func main() {
	var (
		port        int
		envFlag     string
		apiKeysFlag string
		mapPath     string
		dbPath      string
		rateLimit   int
		configPath  string
		verbose     bool
	)

	flag.IntVar(&port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.StringVar(&mapPath, "map-path", "", "Path to a metro map XML document (empty = bundled Nanjing Metro map)")
	flag.StringVar(&dbPath, "db-path", "", "Path to the SQLite network index (empty = in-memory)")
	flag.IntVar(&rateLimit, "rate-limit", 100, "Requests per second allowed per API key")
	flag.StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, logLevel)

	// Values from the config file act as defaults; flags left at their
	// defaults are overridden by it.
	if configPath != "" {
		fileConfig, err := appconf.LoadConfigFile(configPath)
		if err != nil {
			logger.Error("failed to load config file", "path", configPath, "error", err)
			os.Exit(1)
		}
		if fileConfig.Server.Port != 0 {
			port = fileConfig.Server.Port
		}
		if fileConfig.Server.Env != "" {
			envFlag = fileConfig.Server.Env
		}
		if fileConfig.Server.RateLimit != 0 {
			rateLimit = fileConfig.Server.RateLimit
		}
		if fileConfig.Map.Path != "" {
			mapPath = fileConfig.Map.Path
		}
		if fileConfig.Map.DBPath != "" {
			dbPath = fileConfig.Map.DBPath
		}
		if len(fileConfig.ApiKeys) > 0 {
			apiKeysFlag = strings.Join(fileConfig.ApiKeys, ",")
		}
	}

	var apiKeys []string
	if apiKeysFlag != "" {
		apiKeys = strings.Split(apiKeysFlag, ",")
		for i := range apiKeys {
			apiKeys[i] = strings.TrimSpace(apiKeys[i])
		}
	}

	env := appconf.EnvFlagToEnvironment(envFlag)

	tubeConfig := tube.Config{
		MapPath: mapPath,
		DBPath:  dbPath,
		Env:     env,
		Verbose: verbose,
	}

	metro, err := tube.InitManager(tubeConfig)
	if err != nil {
		logger.Error("failed to initialize metro manager", "error", err)
		os.Exit(1)
	}
	defer metro.Shutdown()

	metro.PrintStatistics()

	application := &app.Application{
		Config: appconf.Config{
			Port:      port,
			Env:       env,
			ApiKeys:   apiKeys,
			RateLimit: rateLimit,
			Verbose:   verbose,
		},
		TubeConfig: tubeConfig,
		Logger:     logger,
		Metro:      metro,
	}

	api := restapi.NewRestAPI(application)
	webUI := webui.NewWebUI(metro)

	router := httprouter.New()
	api.SetRoutes(router)
	webUI.SetWebUIRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      api.Wrap(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
