// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package engine defines the narrow capability set the gRPC adapter depends on.
// The adapter never inspects request or response content; it forwards field
// values to an Engine and wraps whatever comes back. Any concrete engine
// satisfying this interface can be substituted, including a test double,
// which keeps the adapter testable without the hosted Vanna service.
//
// Implementations must be safe for concurrent use: a single Engine instance
// is shared by every in-flight RPC for the lifetime of the process.
package engine

import "context"

// Engine is the SQL-generation capability the service delegates to.
// All methods honor ctx cancellation when the underlying transport allows it.
type Engine interface {
	// GenerateSQL turns a natural-language question into a SQL statement.
	// dbContext carries optional key/value hints and may be empty.
	GenerateSQL(ctx context.Context, question string, dbContext map[string]string) (string, error)

	// ValidateSQL reports whether the statement is valid. A false result with
	// a nil error means the engine examined the statement and rejected it;
	// a non-nil error means validation itself could not run.
	ValidateSQL(ctx context.Context, sql string) (bool, error)

	// ExplainSQL returns a natural-language explanation of the statement.
	ExplainSQL(ctx context.Context, sql string) (string, error)

	// Train feeds an engine-specific training payload (DDL, documentation,
	// question/SQL pairs) to the engine.
	Train(ctx context.Context, data string) error
}
