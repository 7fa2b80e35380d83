package util

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/gookit/slog"

	"pgdatadiff/metrics"
	"pgdatadiff/model"
)

// NotAvailable is the fingerprint of a window that hashed to NULL, e.g. an empty one.
const NotAvailable = "not_available"

// OnBoth runs fn against the first and the second database concurrently and
// waits for both. The two calls never share state.
func OnBoth[T any](first, second *sql.DB, fn func(db *sql.DB, source model.Source) T) (T, T) {
	var f, s T
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f = fn(first, model.First)
	}()
	go func() {
		defer wg.Done()
		s = fn(second, model.Second)
	}()
	wg.Wait()
	return f, s
}

// QueryCountBoth runs a single-value integer query on both sides.
func QueryCountBoth(ctx context.Context, first, second *sql.DB, sqlText string, query string) (model.CountResult, model.CountResult) {
	return OnBoth(first, second, func(db *sql.DB, source model.Source) model.CountResult {
		begin := time.Now()
		v, err := QueryReturnInt64(ctx, db, sqlText)
		metrics.ObserveQuery(source.String(), query, begin, err)
		if err != nil {
			slog.Debugf("[%s] %s failed: %s", source, query, err)
			return model.CountResult{Err: fmt.Errorf("failed to fetch %s from %s db -> %w", query, source, err)}
		}
		return model.CountResult{Value: v}
	})
}

// QueryHashBoth runs a fingerprint query on both sides. A failed side returns
// its error text prefixed with the side, so a failure never equals the other side.
func QueryHashBoth(ctx context.Context, first, second *sql.DB, sqlText string) (string, string) {
	return OnBoth(first, second, func(db *sql.DB, source model.Source) string {
		begin := time.Now()
		v, ok, err := QueryReturnNullString(ctx, db, sqlText)
		metrics.ObserveQuery(source.String(), metrics.QueryHashData, begin, err)
		if err != nil {
			slog.Debugf("[%s] %s failed: %s", source, metrics.QueryHashData, err)
			return fmt.Sprintf("%s: %s", source, err)
		}
		if !ok {
			return NotAvailable
		}
		return v
	})
}

// QueryListOne lists the first column of a catalog query on one side. A failed
// fetch is logged and degrades to an empty list.
func QueryListOne(ctx context.Context, db *sql.DB, sqlText string, query string) []string {
	begin := time.Now()
	list, err := QueryReturnColumn(ctx, db, sqlText)
	metrics.ObserveQuery(model.First.String(), query, begin, err)
	if err != nil {
		slog.Errorf("%s failed, treated as empty: %s", query, err)
		return []string{}
	}
	return list
}
