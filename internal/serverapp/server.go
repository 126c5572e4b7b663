// Package serverapp assembles the HTTP surface: repositories, engine
// state, routes and middleware, behind one constructor the binaries and
// integration tests share.
package serverapp

import (
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"shatteredmirror/internal/config"
	"shatteredmirror/internal/content"
	"shatteredmirror/internal/httpmw"
	"shatteredmirror/internal/save"
	"shatteredmirror/internal/server"
	"shatteredmirror/internal/telemetry"
	"shatteredmirror/internal/wallet"
)

type Options struct {
	Config  *config.Config
	DataDir string
	Logger  *logrus.Logger

	// InMemory swaps the file repositories for memory ones (tests).
	InMemory bool
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.DataDir == "" {
		opts.DataDir = "data"
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	var (
		saves  save.Repository
		ledger wallet.Repository
		err    error
	)
	if opts.InMemory {
		saves = save.NewMemoryRepo()
		ledger = wallet.NewMemoryRepo()
	} else {
		saves, err = save.NewFileRepo(filepath.Join(opts.DataDir, "saves"))
		if err != nil {
			return nil, err
		}
		ledger, err = wallet.NewFileRepo(filepath.Join(opts.DataDir, "wallet"))
		if err != nil {
			return nil, err
		}
	}

	app := &server.App{
		Cfg:     opts.Config,
		Lib:     content.DefaultLibrary(),
		Saves:   saves,
		Wallet:  wallet.NewService(ledger, nil),
		Events:  telemetry.NewMemoryRepository(),
		BootNow: time.Now().UTC(),
	}

	mux := http.NewServeMux()
	rr := &server.RouteRegistry{}
	server.RegisterAPIRoutes(mux, rr, app)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"service":"shatteredmirror"}`))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		// Ready once the save store answers.
		if _, err := saves.LoadMeta("readyz"); err != nil {
			http.Error(w, "save storage unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"service":"shatteredmirror"}`))
	})

	return httpmw.Chain(
		mux,
		httpmw.WithAccessLog(opts.Logger),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
	), nil
}
