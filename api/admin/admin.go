// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package admin

import (
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/admin/apilogs"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/admin/loglevel"
	"github.com/Degis-Insurance/Degis-Core-sub000/co"

	healthAPI "github.com/Degis-Insurance/Degis-Core-sub000/api/admin/health"
)

func New(logLevel *slog.LevelVar, apiLogs *atomic.Bool, ledger healthAPI.Ledger) http.HandlerFunc {
	router := mux.NewRouter()
	subRouter := router.PathPrefix("/admin").Subrouter()

	loglevel.New(logLevel).Mount(subRouter, "/loglevel")
	apilogs.New(apiLogs).Mount(subRouter, "/apilogs")
	healthAPI.NewAPI(healthAPI.New(ledger)).Mount(subRouter, "/health")

	handler := handlers.CompressHandler(router)

	return handler.ServeHTTP
}

// StartServer serves the admin API on addr. It returns the base url and a
// function that stops the server.
func StartServer(addr string, logLevel *slog.LevelVar, apiLogs *atomic.Bool, ledger healthAPI.Ledger) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen admin API addr [%v]", addr)
	}

	adminHandler := New(logLevel, apiLogs, ledger)

	srv := &http.Server{Handler: adminHandler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes co.Goes
	goes.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/admin", func() {
		srv.Close()
		goes.Wait()
	}, nil
}
