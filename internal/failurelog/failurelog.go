package failurelog

//go:generate mockgen -source=./failurelog.go -destination=./failurelog_mock.go -package=failurelog FailureLog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/javi11/poolkeeper/internal/utils"
)

var ErrNotFound = errors.New("failure not found")

type Filters struct {
	PoolKey utils.Filter `json:"pool_key"`
	Target  utils.Filter `json:"target"`
	Reason  utils.Filter `json:"reason"`
}

type SortBy struct {
	CreatedAt utils.SortByDirection `json:"created_at"`
	Target    utils.SortByDirection `json:"target"`
}

// FailureLog journals resource creation failures so they can be inspected after the fact.
type FailureLog interface {
	Add(ctx context.Context, poolKey, target, reason string) error
	List(ctx context.Context, limit, offset int, filters *Filters, sortBy *SortBy) (Result, error)
	Delete(ctx context.Context, id int64) error
	Purge(ctx context.Context, olderThan time.Time) (int64, error)
}

type Result struct {
	Entries    []Failure `json:"entries"`
	TotalCount int       `json:"total_count"`
	Offset     int       `json:"offset"`
	Limit      int       `json:"limit"`
}

type Failure struct {
	ID        int64     `json:"id"`
	PoolKey   string    `json:"pool_key"`
	Target    string    `json:"target"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type failureLog struct {
	db *sql.DB
}

// New expects a database already migrated by db.NewDB.
func New(db *sql.DB) FailureLog {
	return &failureLog{db: db}
}

func (f *failureLog) Add(ctx context.Context, poolKey, target, reason string) error {
	stmt, err := f.db.PrepareContext(ctx, "INSERT INTO factory_failures (pool_key, target, reason) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, poolKey, target, reason)

	return err
}

func (f *failureLog) List(ctx context.Context, limit, offset int, filters *Filters, sortBy *SortBy) (Result, error) {
	sqlFilterBuilder := utils.NewSqlFilterBuilder()
	var queryParams []any

	if filters != nil {
		if filters.PoolKey.Value != "" {
			queryParams = append(queryParams, sqlFilterBuilder.AddFilter("pool_key", filters.PoolKey))
		}
		if filters.Target.Value != "" {
			queryParams = append(queryParams, sqlFilterBuilder.AddFilter("target", filters.Target))
		}
		if filters.Reason.Value != "" {
			queryParams = append(queryParams, sqlFilterBuilder.AddFilter("reason", filters.Reason))
		}
	}

	if sortBy != nil && (sortBy.CreatedAt != "" || sortBy.Target != "") {
		if sortBy.CreatedAt != "" {
			sqlFilterBuilder.AddSortBy("created_at", sortBy.CreatedAt)
		}
		if sortBy.Target != "" {
			sqlFilterBuilder.AddSortBy("target", sortBy.Target)
		}
	} else {
		sqlFilterBuilder.AddSortBy("created_at", utils.SortByDirectionDesc)
	}

	filter := sqlFilterBuilder.Build()

	var totalCount int
	err := f.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM factory_failures %s", filter), queryParams...).Scan(&totalCount)
	if err != nil {
		return Result{}, err
	}

	queryParams = append(queryParams, limit, offset)

	rows, err := f.db.QueryContext(
		ctx,
		fmt.Sprintf("SELECT id, pool_key, target, reason, created_at FROM factory_failures %s LIMIT ? OFFSET ?", filter),
		queryParams...,
	)
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	entries := make([]Failure, 0)
	for rows.Next() {
		var e Failure
		if err := rows.Scan(&e.ID, &e.PoolKey, &e.Target, &e.Reason, &e.CreatedAt); err != nil {
			return Result{}, err
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return Result{}, err
	}

	return Result{
		Entries:    entries,
		TotalCount: totalCount,
		Offset:     offset,
		Limit:      limit,
	}, nil
}

func (f *failureLog) Delete(ctx context.Context, id int64) error {
	res, err := f.db.ExecContext(ctx, "DELETE FROM factory_failures WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// Purge deletes every failure recorded before olderThan and returns how many were removed.
func (f *failureLog) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := f.db.ExecContext(ctx, "DELETE FROM factory_failures WHERE created_at < ?", olderThan.UTC().Format(time.DateTime))
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
