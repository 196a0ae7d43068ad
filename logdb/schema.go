// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

// create a table for committed facts
const factTableSchema = `
CREATE TABLE IF NOT EXISTS fact (
	seq INTEGER PRIMARY KEY,
	time INTEGER NOT NULL,
	name TEXT NOT NULL,
	pool INTEGER NOT NULL,
	account BLOB(20) NOT NULL,
	data BLOB
);

CREATE INDEX IF NOT EXISTS idx_fact_time ON fact(time);
CREATE INDEX IF NOT EXISTS idx_fact_pool ON fact(pool, seq);
CREATE INDEX IF NOT EXISTS idx_fact_account ON fact(account, seq);
CREATE INDEX IF NOT EXISTS idx_fact_name ON fact(name, seq);
`
