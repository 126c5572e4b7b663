// Dev entry point: in-memory repositories, debug logging, fixed port.
// Production deploys build cmd/server instead.
package main

import (
	"net/http"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/logger"
	"shatteredmirror/internal/serverapp"
)

const addr = ":8420"

func main() {
	logger.Init("debug", "text")

	handler, err := serverapp.NewHandler(serverapp.Options{
		Config:   config.Default(),
		Logger:   logger.Log,
		InMemory: true,
	})
	if err != nil {
		logger.Log.Fatalf("build server: %v", err)
	}

	logger.Log.Infof("shatteredmirror dev server on http://localhost%s", addr)
	logger.Log.Fatal(http.ListenAndServe(addr, handler))
}
