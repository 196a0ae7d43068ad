// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"strings"

	"github.com/Degis-Insurance/Degis-Core-sub000/metrics"
)

var (
	metricQueryParameters = metrics.LazyLoadCounterVec("logdb_query_parameters", []string{"parameters"})
	metricQueryOrder      = metrics.LazyLoadCounterVec("logdb_query_order", []string{"order"})
	metricLimitBucket     = metrics.LazyLoadHistogram("logdb_query_limit_bucket", []int64{
		0, 5, 10, 25, 50, 100, 250, 500, 1000,
	})
	metricInsertedFacts = metrics.LazyLoadCounter("logdb_inserted_facts_count")
)

func metricsHandleFilter(filter *Filter) {
	paramsUsed := make([]string, 0, 4)
	if filter.Pool != nil {
		paramsUsed = append(paramsUsed, "pool")
	}
	if filter.Account != nil {
		paramsUsed = append(paramsUsed, "account")
	}
	if len(filter.Names) > 0 {
		paramsUsed = append(paramsUsed, "name")
	}
	if filter.Range != nil {
		paramsUsed = append(paramsUsed, "range")
	}
	metricQueryParameters().AddWithLabel(1, map[string]string{"parameters": strings.Join(paramsUsed, ",")})

	if filter.Order == DESC {
		metricQueryOrder().AddWithLabel(1, map[string]string{"order": "desc"})
	} else {
		metricQueryOrder().AddWithLabel(1, map[string]string{"order": "asc"})
	}

	if filter.Options != nil {
		limit := filter.Options.Limit
		if limit > 1000 {
			limit = 1001
		}
		metricLimitBucket().Observe(int64(limit))
	}
}
