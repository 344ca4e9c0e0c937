// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package vanna

import (
	"context"
	"errors"

	errs "vannabridge/service/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ValidateSQL reports whether a statement is valid. With a validation pool
// attached, PostgreSQL plans the statement via EXPLAIN and its verdict is
// authoritative; a planner rejection means invalid, not a fault. Without a
// pool the question is delegated to the remote endpoint.
func (c *Client) ValidateSQL(ctx context.Context, sql string) (bool, error) {
	if c.pool != nil {
		return c.validateWithDatabase(ctx, sql)
	}
	return c.validateRemote(ctx, sql)
}

// validateWithDatabase asks PostgreSQL to plan the statement. EXPLAIN parses
// and plans without executing, so write statements are safe to check.
func (c *Client) validateWithDatabase(ctx context.Context, sql string) (bool, error) {
	_, err := c.pool.Exec(ctx, "EXPLAIN "+sql)
	if err == nil {
		return true, nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// The database reached a verdict: the statement does not parse or plan.
		return false, nil
	}
	return false, errs.Wrap(errs.ValidateFailed, "validation query failed", err)
}

// validateRemote delegates validation to the Vanna RPC endpoint.
func (c *Client) validateRemote(ctx context.Context, sql string) (bool, error) {
	out, err := c.call(ctx, errs.ValidateFailed, "validate_sql", map[string]any{"sql": sql})
	if err != nil {
		return false, err
	}
	return out.Result.IsValid, nil
}
