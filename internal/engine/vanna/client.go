// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package vanna implements the engine interface against the hosted Vanna RPC
// endpoint. It is a thin HTTP JSON client: every capability is a single POST
// to the rpc endpoint with the API key and model sent as headers, and the
// result (or the endpoint's error text) mapped back onto Go values.
//
// When a validation pool is attached, ValidateSQL is answered by PostgreSQL
// instead of the remote endpoint (see validator.go).
package vanna

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	errs "vannabridge/service/internal/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultRPCURL is the hosted Vanna RPC endpoint.
const DefaultRPCURL = "https://ask.vanna.ai/rpc"

// Client calls the hosted Vanna RPC endpoint. It satisfies engine.Engine.
// A single Client is shared by all concurrent RPC handlers; the underlying
// http.Client and pgx pool are both safe for concurrent use.
type Client struct {
	// rpcURL is the full URL of the Vanna RPC endpoint
	rpcURL string
	// apiKey is sent as the Vanna-Key header on every request
	apiKey string
	// model is the Vanna model/org name, sent as the Vanna-Org header
	model string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// pool, when non-nil, answers ValidateSQL via EXPLAIN against PostgreSQL
	pool *pgxpool.Pool
}

// New creates a Vanna engine client. rpcURL may be empty to use the hosted
// default. The 60-second timeout covers SQL generation, which can take the
// remote model tens of seconds on large schemas.
func New(rpcURL, apiKey, model string) *Client {
	if rpcURL == "" {
		rpcURL = DefaultRPCURL
	}
	return &Client{
		rpcURL: strings.TrimRight(rpcURL, "/"),
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithValidationPool attaches a PostgreSQL pool used to answer ValidateSQL
// locally. Returns the client for chaining.
func (c *Client) WithValidationPool(pool *pgxpool.Pool) *Client {
	c.pool = pool
	return c
}

// rpcRequest is the wire shape of a Vanna RPC call.
type rpcRequest struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

// rpcResponse is the wire shape of a Vanna RPC result. Exactly one of the
// payload fields is populated depending on the method; Error is set when the
// endpoint rejected the call.
type rpcResponse struct {
	Result struct {
		SQL         string `json:"sql"`
		Explanation string `json:"explanation"`
		IsValid     bool   `json:"is_valid"`
		ID          string `json:"id"`
	} `json:"result"`
	Error string `json:"error"`
}

// call performs one RPC round trip. Transport failures are classified as
// engine_unreachable; endpoint-reported errors keep the given kind.
func (c *Client) call(ctx context.Context, kind errs.Kind, method string, params map[string]any) (*rpcResponse, error) {
	body, err := json.Marshal(rpcRequest{Method: method, Params: params})
	if err != nil {
		return nil, errs.Wrap(kind, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(kind, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Vanna-Key", c.apiKey)
	req.Header.Set("Vanna-Org", c.model)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(errs.EngineUnreachable, "vanna rpc endpoint", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(kind, fmt.Sprintf("vanna rpc returned HTTP %d", resp.StatusCode))
	}

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(kind, "decode response", err)
	}
	if out.Error != "" {
		return nil, errs.New(kind, out.Error)
	}
	return &out, nil
}

// GenerateSQL asks the remote model to produce SQL for a question.
func (c *Client) GenerateSQL(ctx context.Context, question string, dbContext map[string]string) (string, error) {
	params := map[string]any{"question": question}
	if len(dbContext) > 0 {
		params["context"] = dbContext
	}
	out, err := c.call(ctx, errs.GenerateFailed, "generate_sql_from_question", params)
	if err != nil {
		return "", err
	}
	if out.Result.SQL == "" {
		return "", errs.New(errs.GenerateFailed, "engine returned no SQL")
	}
	return out.Result.SQL, nil
}

// ExplainSQL asks the remote model for a natural-language explanation.
func (c *Client) ExplainSQL(ctx context.Context, sql string) (string, error) {
	out, err := c.call(ctx, errs.ExplainFailed, "generate_explanation", map[string]any{"sql": sql})
	if err != nil {
		return "", err
	}
	return out.Result.Explanation, nil
}

// Train submits a training payload to the remote model.
func (c *Client) Train(ctx context.Context, data string) error {
	_, err := c.call(ctx, errs.TrainFailed, "train", map[string]any{"data": data})
	return err
}
