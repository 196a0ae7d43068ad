// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Degis-Insurance/Degis-Core-sub000/api/double"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/farmadmin"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/gov"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/logs"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/middleware"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/pools"
	"github.com/Degis-Insurance/Degis-Core-sub000/api/subscriptions"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
	"github.com/Degis-Insurance/Degis-Core-sub000/log"
)

var logger = log.WithContext("pkg", "api")

type Options struct {
	AllowedOrigins       string
	BacktraceLimit       uint64
	EnableReqLogger      *atomic.Bool
	SlowQueriesThreshold time.Duration
	Log5xxErrors         bool
	EnableMetrics        bool
	LogsLimit            uint64
}

// New returns the api router and a function closing the open subscriptions.
func New(l *ledger.Ledger, opts Options) (http.HandlerFunc, func()) {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	pools.New(l).
		Mount(router, "/pools")
	farmadmin.New(l).
		Mount(router, "/admin")
	double.New(l).
		Mount(router, "/double")
	gov.New(l).
		Mount(router, "/gov")
	if db := l.LogDB(); db != nil {
		logs.New(db, opts.LogsLimit).
			Mount(router, "/logs")
	}
	subs := subscriptions.New(l.Feed(), origins, opts.BacktraceLimit)
	subs.Mount(router, "/subscriptions")

	if opts.EnableMetrics {
		router.Use(metricsMiddleware)
	}

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut}),
	)(handler)

	enabled := opts.EnableReqLogger
	if enabled == nil {
		enabled = &atomic.Bool{}
	}
	handler = middleware.RequestLoggerMiddleware(logger, enabled, opts.SlowQueriesThreshold, opts.Log5xxErrors)(handler)

	return handler.ServeHTTP, subs.Close // subscriptions handles hijacked conns, which need to be closed
}
