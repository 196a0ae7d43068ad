// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ethereum/go-ethereum/common/fdlimit"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Degis-Insurance/Degis-Core-sub000/genesis"
	"github.com/Degis-Insurance/Degis-Core-sub000/ledger"
	"github.com/Degis-Insurance/Degis-Core-sub000/log"
	"github.com/Degis-Insurance/Degis-Core-sub000/logdb"
	"github.com/Degis-Insurance/Degis-Core-sub000/lvldb"
	"github.com/Degis-Insurance/Degis-Core-sub000/metrics"
)

func selectGenesis(ctx *cli.Context) (*genesis.Config, string) {
	path := ctx.String(configFlag.Name)
	if path == "" {
		return genesis.NewDevnet(uint64(time.Now().Unix())), "devnet"
	}
	cfg, err := genesis.Load(path)
	if err != nil {
		fatal(fmt.Sprintf("load genesis config [%v]: %v", path, err))
	}
	return cfg, path
}

// instanceID identifies the token set a ledger is built on.
func instanceID(cfg *genesis.Config) []byte {
	return crypto.Keccak256(cfg.RewardToken.Bytes(), cfg.Gov.StakeToken.Bytes(), cfg.Gov.VeToken.Bytes())[:8]
}

func makeInstanceDir(ctx *cli.Context, cfg *genesis.Config) string {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		fatal(fmt.Sprintf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name))
	}
	instanceDir := filepath.Join(dataDir, fmt.Sprintf("instance-%x", instanceID(cfg)))
	if err := os.MkdirAll(instanceDir, 0700); err != nil {
		fatal(fmt.Sprintf("create data dir [%v]: %v", instanceDir, err))
	}
	return instanceDir
}

func openMainDB(ctx *cli.Context, dataDir string) *lvldb.LevelDB {
	cacheMB := ctx.Int(cacheFlag.Name)
	if cacheMB < 16 {
		cacheMB = 16
	}
	fdCache := suggestFDCache()
	log.Debug("opening main db", "cache", cacheMB, "fd-cache", fdCache)

	dir := filepath.Join(dataDir, "main.db")
	db, err := lvldb.New(dir, lvldb.Options{
		CacheSize:              cacheMB,
		OpenFilesCacheCapacity: fdCache,
	})
	if err != nil {
		fatal(fmt.Sprintf("open ledger database [%v]: %v", dir, err))
	}
	return db
}

func suggestFDCache() int {
	limit, err := fdlimit.Current()
	if err != nil {
		fatal("failed to get fd limit:", err)
	}
	if limit <= 1024 {
		log.Warn("low fd limit, increase it if possible", "limit", limit)
	}

	n := limit / 2
	if n > 5120 {
		return 5120
	}
	return n
}

func openLogDB(dataDir string) *logdb.LogDB {
	dir := filepath.Join(dataDir, "facts.db")
	db, err := logdb.New(dir)
	if err != nil {
		fatal(fmt.Sprintf("open log database [%v]: %v", dir, err))
	}
	return db
}

func openMemMainDB() *lvldb.LevelDB {
	db, err := lvldb.NewMem()
	if err != nil {
		fatal(fmt.Sprintf("open ledger database: %v", err))
	}
	return db
}

func openMemLogDB() *logdb.LogDB {
	db, err := logdb.NewMem()
	if err != nil {
		fatal(fmt.Sprintf("open log database: %v", err))
	}
	return db
}

// initLedger builds the ledger and applies cfg on first start.
func initLedger(cfg *genesis.Config, mainDB *lvldb.LevelDB, logDB *logdb.LogDB) *ledger.Ledger {
	l, err := ledger.New(mainDB, ledger.Options{
		RewardToken: cfg.RewardToken,
		StakeToken:  cfg.Gov.StakeToken,
		VeToken:     cfg.Gov.VeToken,
		LogDB:       logDB,
	})
	if err != nil {
		fatal("initialize ledger:", err)
	}
	initialized, err := l.Initialized()
	if err != nil {
		fatal("read ledger state:", err)
	}
	if !initialized {
		if err := l.ApplyGenesis(cfg); err != nil {
			fatal("apply genesis:", err)
		}
		log.Info("genesis applied", "admin", cfg.Admin, "pools", len(cfg.Pools), "start", cfg.StartTimestamp)
	}
	return l
}

func listen(name, addr string) net.Listener {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		fatal(fmt.Sprintf("listen %s addr [%v]: %v", name, addr, err))
	}
	return listener
}

func newAPIServer(ctx *cli.Context, handler http.Handler) *http.Server {
	timeout := ctx.Uint64(apiTimeoutFlag.Name)
	if timeout > 0 {
		handler = handleAPITimeout(handler, time.Duration(timeout)*time.Millisecond)
	}
	handler = requestBodyLimit(handler)
	return &http.Server{Handler: handler, ReadHeaderTimeout: time.Second}
}

func newMetricsServer() *http.Server {
	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	handler := handlers.CompressHandler(router)
	return &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
}

func serve(srv *http.Server, listener net.Listener) error {
	if err := srv.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func printStartupMessage(source string, cfg *genesis.Config, l *ledger.Ledger, dataDir, apiURL string) {
	status, err := l.FarmStatus()
	if err != nil {
		fatal("read farm status:", err)
	}
	fmt.Printf(`Starting %v
    Genesis      [ %v ]
    Admin        [ %v ]
    Reward token [ %v ]
    Start        [ %v ]
    Pools        [ %v ]
    Last fact    [ #%v ]
    Data dir     [ %v ]
    API portal   [ %v ]
`,
		fmt.Sprintf("Farmd/v%s/%s/%s", fullVersion(), runtime.GOOS, runtime.Version()),
		source,
		status.Admin,
		cfg.RewardToken,
		time.Unix(int64(status.StartTimestamp), 0),
		status.PoolCount,
		l.Feed().Last(),
		dataDir,
		apiURL)
}
