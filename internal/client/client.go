// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package client provides a small wrapper around the VannaService gRPC client.
// It handles connection lifecycle and exposes the four unary capabilities as
// plain Go calls, so the CLI commands never touch protobuf types directly.
package client

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"vannabridge/service/internal/rpc/vannapb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultPort is appended to addresses given without an explicit port.
const DefaultPort = "50051"

// Client wraps a VannaService connection.
type Client struct {
	conn *grpc.ClientConn
	svc  vannapb.VannaServiceClient
}

// Options control how the connection is established.
type Options struct {
	// TLS enables transport security; the service itself is insecure by
	// default, so this is only needed behind a terminating proxy.
	TLS bool
}

// Connect dials the vannabridge service. addr may omit the port, in which
// case the service default is used.
func Connect(ctx context.Context, addr string, opts Options) (*Client, error) {
	// Derive SNI and ensure default port if missing
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	target := addr
	if _, _, err := net.SplitHostPort(addr); err != nil {
		target = net.JoinHostPort(addr, DefaultPort)
	}

	var creds credentials.TransportCredentials
	if opts.TLS {
		creds = credentials.NewTLS(&tls.Config{ServerName: host, MinVersion: tls.VersionTLS12})
	} else {
		creds = insecure.NewCredentials()
	}

	dctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(dctx, target, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, svc: vannapb.NewVannaServiceClient(conn)}, nil
}

// NewFromConn wraps an existing connection. Used by tests that dial over an
// in-memory listener.
func NewFromConn(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn, svc: vannapb.NewVannaServiceClient(conn)}
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// GenerateSQL asks the service to produce SQL for a question.
func (c *Client) GenerateSQL(ctx context.Context, question string, dbContext map[string]string) (string, error) {
	resp, err := c.svc.GenerateSQL(ctx, &vannapb.GenerateSQLRequest{Question: question, Context: dbContext})
	if err != nil {
		return "", err
	}
	return resp.GetSql(), nil
}

// ValidateSQL asks the service whether the statement is valid. The message is
// empty for valid statements.
func (c *Client) ValidateSQL(ctx context.Context, sql string) (valid bool, message string, err error) {
	resp, err := c.svc.ValidateSQL(ctx, &vannapb.ValidateSQLRequest{Sql: sql})
	if err != nil {
		return false, "", err
	}
	return resp.GetIsValid(), resp.GetMessage(), nil
}

// ExplainSQL asks the service for a natural-language explanation.
func (c *Client) ExplainSQL(ctx context.Context, sql string) (string, error) {
	resp, err := c.svc.ExplainSQL(ctx, &vannapb.ExplainSQLRequest{Sql: sql})
	if err != nil {
		return "", err
	}
	return resp.GetExplanation(), nil
}

// Train submits a training payload to the service.
func (c *Client) Train(ctx context.Context, data string) error {
	_, err := c.svc.Train(ctx, &vannapb.TrainRequest{Data: data})
	return err
}
