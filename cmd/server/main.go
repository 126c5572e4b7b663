package main

import (
	"net/http"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/logger"
	"shatteredmirror/internal/serverapp"
)

func main() {
	env, err := config.ServerFromEnv()
	if err != nil {
		logger.Log.Fatalf("parse environment: %v", err)
	}
	logger.Init(env.LogLevel, env.LogFormat)

	cfg := config.Default()
	if env.BalancePath != "" {
		cfg, err = config.Load(env.BalancePath)
		if err != nil {
			logger.Log.Fatalf("load balance config %s: %v", env.BalancePath, err)
		}
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:  cfg,
		DataDir: env.DataDir,
		Logger:  logger.Log,
	})
	if err != nil {
		logger.Log.Fatalf("build server: %v", err)
	}

	logger.Log.WithField("addr", env.Addr).Info("shatteredmirror listening")
	logger.Log.Fatal(http.ListenAndServe(env.Addr, handler))
}
