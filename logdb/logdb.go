// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/Degis-Insurance/Degis-Core-sub000/events"
)

// LogDB stores the fact history in sqlite.
type LogDB struct {
	path          string
	db            *sql.DB
	driverVersion string
}

// New create or open log db at given path.
func New(path string) (*LogDB, error) {
	return open(path, path+"?_journal=wal")
}

// NewMem create a log db in ram.
func NewMem() (*LogDB, error) {
	return open(":memory:", ":memory:")
}

func open(path, dsn string) (logDB *LogDB, err error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if logDB == nil {
			db.Close()
		}
	}()

	// one connection avoids 'database is locked' errors and keeps an in-memory db alive
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(factTableSchema); err != nil {
		return nil, err
	}

	driverVer, _, _ := sqlite3.Version()
	return &LogDB{
		path,
		db,
		driverVer,
	}, nil
}

// Close close the log db.
func (db *LogDB) Close() error {
	return db.db.Close()
}

func (db *LogDB) Path() string {
	return db.path
}

// DriverVersion returns the version of the linked sqlite library.
func (db *LogDB) DriverVersion() string {
	return db.driverVersion
}

// Insert appends records in one transaction.
func (db *LogDB) Insert(records []*events.Record) error {
	if len(records) == 0 {
		return nil
	}
	return db.execInTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT OR REPLACE INTO fact(seq, time, name, pool, account, data) VALUES (?, ?, ?, ?, ?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, rec := range records {
			data, err := json.Marshal(rec.Event)
			if err != nil {
				return errors.Wrapf(err, "encode fact %d", rec.Seq)
			}
			account := rec.Event.Account()
			if _, err := stmt.Exec(
				rec.Seq,
				rec.Time,
				rec.Event.Name(),
				rec.Event.Pool(),
				account.Bytes(),
				data,
			); err != nil {
				return err
			}
		}
		metricInsertedFacts().Add(int64(len(records)))
		return nil
	})
}

// LastSeq returns the highest stored sequence number, zero when empty.
func (db *LogDB) LastSeq() (uint64, error) {
	var seq sql.NullInt64
	if err := db.db.QueryRow("SELECT MAX(seq) FROM fact").Scan(&seq); err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil
	}
	return uint64(seq.Int64), nil
}

// Filter returns the facts matching filter.
func (db *LogDB) Filter(ctx context.Context, filter *Filter) ([]*Fact, error) {
	if filter == nil {
		return db.query(ctx, "SELECT seq, time, name, pool, account, data FROM fact ORDER BY seq ASC")
	}
	metricsHandleFilter(filter)

	var (
		stmt strings.Builder
		args []any
	)
	stmt.WriteString("SELECT seq, time, name, pool, account, data FROM fact WHERE 1")

	if filter.Range != nil {
		stmt.WriteString(" AND time >= ? AND time <= ?")
		args = append(args, filter.Range.From, filter.Range.To)
	}
	if filter.Pool != nil {
		stmt.WriteString(" AND pool = ?")
		args = append(args, *filter.Pool)
	}
	if filter.Account != nil {
		stmt.WriteString(" AND account = ?")
		args = append(args, filter.Account.Bytes())
	}
	if len(filter.Names) > 0 {
		stmt.WriteString(" AND name IN (?" + strings.Repeat(", ?", len(filter.Names)-1) + ")")
		for _, name := range filter.Names {
			args = append(args, name)
		}
	}

	if filter.Order == DESC {
		stmt.WriteString(" ORDER BY seq DESC")
	} else {
		stmt.WriteString(" ORDER BY seq ASC")
	}

	if filter.Options != nil {
		stmt.WriteString(" LIMIT ?, ?")
		args = append(args, filter.Options.Offset, filter.Options.Limit)
	}
	return db.query(ctx, stmt.String(), args...)
}

func (db *LogDB) query(ctx context.Context, stmt string, args ...any) ([]*Fact, error) {
	rows, err := db.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []*Fact
	for rows.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		var (
			seq     uint64
			time    uint64
			name    string
			pool    uint64
			account []byte
			data    []byte
		)
		if err := rows.Scan(
			&seq,
			&time,
			&name,
			&pool,
			&account,
			&data,
		); err != nil {
			return nil, err
		}
		facts = append(facts, &Fact{
			Seq:     seq,
			Time:    time,
			Name:    name,
			Pool:    pool,
			Account: common.BytesToAddress(account),
			Data:    data,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return facts, nil
}

func (db *LogDB) execInTx(proc func(*sql.Tx) error) (err error) {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	if err := proc(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit facts: %w", err)
	}
	return nil
}
