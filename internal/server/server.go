// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package server implements the VannaService gRPC adapter. Each handler is a
// stateless, one-shot transform: forward the request fields to the engine,
// wrap the result. Engine faults are caught at the handler boundary, mapped
// to an Internal status carrying the fault text, and never allowed to unwind
// into the transport layer. A fault in one call has no effect on concurrent
// or subsequent calls.
package server

import (
	"context"

	"vannabridge/service/internal/engine"
	"vannabridge/service/internal/rpc/vannapb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// invalidQueryMessage is the fixed text returned when the engine rejects a
// statement. Clients match on it, so it is part of the wire contract.
const invalidQueryMessage = "Invalid SQL query"

// VannaServer adapts an engine.Engine to the VannaService gRPC surface.
// It holds no per-call state; the engine is the only shared resource and
// must be safe for concurrent invocation.
type VannaServer struct {
	vannapb.UnimplementedVannaServiceServer

	engine engine.Engine
}

// New creates the adapter around a shared engine instance.
func New(e engine.Engine) *VannaServer {
	return &VannaServer{engine: e}
}

// GenerateSQL forwards the question and context hints to the engine.
func (s *VannaServer) GenerateSQL(ctx context.Context, req *vannapb.GenerateSQLRequest) (*vannapb.GenerateSQLResponse, error) {
	sql, err := s.engine.GenerateSQL(ctx, req.GetQuestion(), req.GetContext())
	if err != nil {
		return &vannapb.GenerateSQLResponse{}, status.Error(codes.Internal, err.Error())
	}
	return &vannapb.GenerateSQLResponse{Sql: sql}, nil
}

// ValidateSQL forwards the statement to the engine. An engine verdict of
// invalid is a successful call; only a validation fault yields an error status.
func (s *VannaServer) ValidateSQL(ctx context.Context, req *vannapb.ValidateSQLRequest) (*vannapb.ValidateSQLResponse, error) {
	valid, err := s.engine.ValidateSQL(ctx, req.GetSql())
	if err != nil {
		return &vannapb.ValidateSQLResponse{}, status.Error(codes.Internal, err.Error())
	}
	msg := ""
	if !valid {
		msg = invalidQueryMessage
	}
	return &vannapb.ValidateSQLResponse{IsValid: valid, Message: msg}, nil
}

// ExplainSQL forwards the statement to the engine.
func (s *VannaServer) ExplainSQL(ctx context.Context, req *vannapb.ExplainSQLRequest) (*vannapb.ExplainSQLResponse, error) {
	explanation, err := s.engine.ExplainSQL(ctx, req.GetSql())
	if err != nil {
		return &vannapb.ExplainSQLResponse{}, status.Error(codes.Internal, err.Error())
	}
	return &vannapb.ExplainSQLResponse{Explanation: explanation}, nil
}

// Train forwards the payload to the engine. Unlike the other operations the
// response carries its own success flag alongside the status code.
func (s *VannaServer) Train(ctx context.Context, req *vannapb.TrainRequest) (*vannapb.TrainResponse, error) {
	if err := s.engine.Train(ctx, req.GetData()); err != nil {
		return &vannapb.TrainResponse{Success: false, Message: err.Error()}, status.Error(codes.Internal, err.Error())
	}
	return &vannapb.TrainResponse{Success: true}, nil
}

// NewGRPCServer builds a grpc.Server with the adapter registered and a fixed
// worker pool of the given size. Calls beyond the pool queue at the transport
// rather than spawning unbounded goroutines.
func NewGRPCServer(e engine.Engine, workers int) *grpc.Server {
	if workers <= 0 {
		workers = 10
	}
	gs := grpc.NewServer(
		grpc.NumStreamWorkers(uint32(workers)),
		grpc.MaxConcurrentStreams(uint32(workers)),
	)
	vannapb.RegisterVannaServiceServer(gs, New(e))
	return gs
}
