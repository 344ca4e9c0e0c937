// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package vanna

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errs "vannabridge/service/internal/errors"
)

// newTestClient points a Client at an httptest server that records the last
// request and replies with the given body.
func newTestClient(t *testing.T, status int, reply string) (*Client, *rpcRequest) {
	t.Helper()

	var last rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Vanna-Key"); got != "vn-test-key" {
			t.Errorf("Vanna-Key header = %q, want %q", got, "vn-test-key")
		}
		if got := r.Header.Get("Vanna-Org"); got != "demo-model" {
			t.Errorf("Vanna-Org header = %q, want %q", got, "demo-model")
		}
		if err := json.NewDecoder(r.Body).Decode(&last); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(status)
		w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, "vn-test-key", "demo-model"), &last
}

func TestGenerateSQL(t *testing.T) {
	c, last := newTestClient(t, http.StatusOK, `{"result":{"sql":"SELECT COUNT(*) FROM users"}}`)

	sql, err := c.GenerateSQL(context.Background(), "count users", map[string]string{"schema": "public"})
	if err != nil {
		t.Fatalf("GenerateSQL: %v", err)
	}
	if sql != "SELECT COUNT(*) FROM users" {
		t.Errorf("sql = %q, want %q", sql, "SELECT COUNT(*) FROM users")
	}

	if last.Method != "generate_sql_from_question" {
		t.Errorf("rpc method = %q, want %q", last.Method, "generate_sql_from_question")
	}
	if last.Params["question"] != "count users" {
		t.Errorf("params[question] = %v, want %q", last.Params["question"], "count users")
	}
	hints, ok := last.Params["context"].(map[string]any)
	if !ok || hints["schema"] != "public" {
		t.Errorf("params[context] = %v, want schema=public", last.Params["context"])
	}
}

func TestGenerateSQLEmptyResult(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"result":{}}`)

	_, err := c.GenerateSQL(context.Background(), "count users", nil)
	if err == nil {
		t.Fatal("expected error for empty SQL result")
	}
	var e *errs.E
	if !errors.As(err, &e) || e.Kind != errs.GenerateFailed {
		t.Errorf("error kind = %v, want %v", err, errs.GenerateFailed)
	}
}

func TestExplainSQL(t *testing.T) {
	c, last := newTestClient(t, http.StatusOK, `{"result":{"explanation":"Counts all rows in users."}}`)

	explanation, err := c.ExplainSQL(context.Background(), "SELECT COUNT(*) FROM users")
	if err != nil {
		t.Fatalf("ExplainSQL: %v", err)
	}
	if explanation != "Counts all rows in users." {
		t.Errorf("explanation = %q, want %q", explanation, "Counts all rows in users.")
	}
	if last.Method != "generate_explanation" {
		t.Errorf("rpc method = %q, want %q", last.Method, "generate_explanation")
	}
	if last.Params["sql"] != "SELECT COUNT(*) FROM users" {
		t.Errorf("params[sql] = %v, want the statement", last.Params["sql"])
	}
}

func TestTrain(t *testing.T) {
	c, last := newTestClient(t, http.StatusOK, `{"result":{"id":"tr-123"}}`)

	if err := c.Train(context.Background(), "CREATE TABLE users (id INT)"); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if last.Method != "train" {
		t.Errorf("rpc method = %q, want %q", last.Method, "train")
	}
	if last.Params["data"] != "CREATE TABLE users (id INT)" {
		t.Errorf("params[data] = %v, want the payload", last.Params["data"])
	}
}

func TestValidateSQLRemote(t *testing.T) {
	c, last := newTestClient(t, http.StatusOK, `{"result":{"is_valid":true}}`)

	valid, err := c.ValidateSQL(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("ValidateSQL: %v", err)
	}
	if !valid {
		t.Error("valid = false, want true")
	}
	if last.Method != "validate_sql" {
		t.Errorf("rpc method = %q, want %q", last.Method, "validate_sql")
	}
}

func TestEndpointError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"error":"model quota exceeded"}`)

	_, err := c.GenerateSQL(context.Background(), "count users", nil)
	if err == nil {
		t.Fatal("expected error from endpoint")
	}
	var e *errs.E
	if !errors.As(err, &e) {
		t.Fatalf("error type = %T, want *errs.E", err)
	}
	if e.Kind != errs.GenerateFailed {
		t.Errorf("error kind = %q, want %q", e.Kind, errs.GenerateFailed)
	}
	if e.Message != "model quota exceeded" {
		t.Errorf("error message = %q, want %q", e.Message, "model quota exceeded")
	}
}

func TestHTTPStatusError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusBadGateway, `upstream down`)

	_, err := c.ExplainSQL(context.Background(), "SELECT 1")
	if err == nil {
		t.Fatal("expected error for HTTP 502")
	}
	var e *errs.E
	if !errors.As(err, &e) || e.Kind != errs.ExplainFailed {
		t.Errorf("error = %v, want kind %q", err, errs.ExplainFailed)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // dial target that refuses connections

	c := New(srv.URL, "vn-test-key", "demo-model")
	_, err := c.GenerateSQL(context.Background(), "count users", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var e *errs.E
	if !errors.As(err, &e) {
		t.Fatalf("error type = %T, want *errs.E", err)
	}
	if e.Kind != errs.EngineUnreachable {
		t.Errorf("error kind = %q, want %q", e.Kind, errs.EngineUnreachable)
	}
}

func TestDefaultRPCURL(t *testing.T) {
	c := New("", "vn-test-key", "demo-model")
	if c.rpcURL != DefaultRPCURL {
		t.Errorf("rpcURL = %q, want %q", c.rpcURL, DefaultRPCURL)
	}
}
