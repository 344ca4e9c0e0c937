// Copyright (c) 2025 Vannabridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"vannabridge/service/internal/rpc/vannapb"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fakeEngine lets each test stub exactly the methods it exercises.
type fakeEngine struct {
	generate func(ctx context.Context, question string, dbContext map[string]string) (string, error)
	validate func(ctx context.Context, sql string) (bool, error)
	explain  func(ctx context.Context, sql string) (string, error)
	train    func(ctx context.Context, data string) error
}

func (f *fakeEngine) GenerateSQL(ctx context.Context, question string, dbContext map[string]string) (string, error) {
	return f.generate(ctx, question, dbContext)
}

func (f *fakeEngine) ValidateSQL(ctx context.Context, sql string) (bool, error) {
	return f.validate(ctx, sql)
}

func (f *fakeEngine) ExplainSQL(ctx context.Context, sql string) (string, error) {
	return f.explain(ctx, sql)
}

func (f *fakeEngine) Train(ctx context.Context, data string) error {
	return f.train(ctx, data)
}

func TestGenerateSQL(t *testing.T) {
	tests := []struct {
		name     string
		question string
		context  map[string]string
		sql      string
		err      error
		wantSQL  string
		wantCode codes.Code
	}{
		{
			name:     "question forwarded and sql returned verbatim",
			question: "How many users signed up today?",
			sql:      "SELECT COUNT(*) FROM users WHERE created_at::date = CURRENT_DATE",
			wantSQL:  "SELECT COUNT(*) FROM users WHERE created_at::date = CURRENT_DATE",
			wantCode: codes.OK,
		},
		{
			name:     "count users scenario",
			question: "count users",
			sql:      "SELECT COUNT(*) FROM users",
			wantSQL:  "SELECT COUNT(*) FROM users",
			wantCode: codes.OK,
		},
		{
			name:     "context hints passed through untouched",
			question: "total revenue",
			context:  map[string]string{"schema": "sales", "dialect": "postgres"},
			sql:      "SELECT SUM(amount) FROM sales.orders",
			wantSQL:  "SELECT SUM(amount) FROM sales.orders",
			wantCode: codes.OK,
		},
		{
			name:     "engine fault maps to internal with fault text",
			question: "anything",
			err:      errors.New("model endpoint returned 503"),
			wantSQL:  "",
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuestion string
			var gotContext map[string]string
			s := New(&fakeEngine{
				generate: func(ctx context.Context, question string, dbContext map[string]string) (string, error) {
					gotQuestion = question
					gotContext = dbContext
					return tt.sql, tt.err
				},
			})

			resp, err := s.GenerateSQL(context.Background(), &vannapb.GenerateSQLRequest{
				Question: tt.question,
				Context:  tt.context,
			})

			if gotQuestion != tt.question {
				t.Errorf("engine received question %q, want %q", gotQuestion, tt.question)
			}
			for k, v := range tt.context {
				if gotContext[k] != v {
					t.Errorf("engine context[%q] = %q, want %q", k, gotContext[k], v)
				}
			}

			if tt.wantCode == codes.OK {
				if err != nil {
					t.Fatalf("GenerateSQL returned error: %v", err)
				}
			} else {
				st, ok := status.FromError(err)
				if !ok {
					t.Fatalf("error is not a gRPC status: %v", err)
				}
				if st.Code() != tt.wantCode {
					t.Errorf("status code = %v, want %v", st.Code(), tt.wantCode)
				}
				if st.Message() != tt.err.Error() {
					t.Errorf("status message = %q, want %q", st.Message(), tt.err.Error())
				}
			}

			if resp.GetSql() != tt.wantSQL {
				t.Errorf("response sql = %q, want %q", resp.GetSql(), tt.wantSQL)
			}
		})
	}
}

func TestValidateSQL(t *testing.T) {
	tests := []struct {
		name        string
		sql         string
		valid       bool
		err         error
		wantValid   bool
		wantMessage string
		wantCode    codes.Code
	}{
		{
			name:        "valid statement yields empty message",
			sql:         "SELECT 1",
			valid:       true,
			wantValid:   true,
			wantMessage: "",
			wantCode:    codes.OK,
		},
		{
			name:        "invalid statement is a successful call with fixed message",
			sql:         "SELEKT 1",
			valid:       false,
			wantValid:   false,
			wantMessage: "Invalid SQL query",
			wantCode:    codes.OK,
		},
		{
			name:      "validation fault maps to internal",
			sql:       "SELECT 1",
			err:       errors.New("validation backend unreachable"),
			wantValid: false,
			wantCode:  codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSQL string
			s := New(&fakeEngine{
				validate: func(ctx context.Context, sql string) (bool, error) {
					gotSQL = sql
					return tt.valid, tt.err
				},
			})

			resp, err := s.ValidateSQL(context.Background(), &vannapb.ValidateSQLRequest{Sql: tt.sql})

			if gotSQL != tt.sql {
				t.Errorf("engine received sql %q, want %q", gotSQL, tt.sql)
			}

			if tt.wantCode == codes.OK {
				if err != nil {
					t.Fatalf("ValidateSQL returned error: %v", err)
				}
			} else {
				st, ok := status.FromError(err)
				if !ok {
					t.Fatalf("error is not a gRPC status: %v", err)
				}
				if st.Code() != tt.wantCode {
					t.Errorf("status code = %v, want %v", st.Code(), tt.wantCode)
				}
				if st.Message() != tt.err.Error() {
					t.Errorf("status message = %q, want %q", st.Message(), tt.err.Error())
				}
			}

			if resp.GetIsValid() != tt.wantValid {
				t.Errorf("is_valid = %v, want %v", resp.GetIsValid(), tt.wantValid)
			}
			if resp.GetMessage() != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.GetMessage(), tt.wantMessage)
			}
		})
	}
}

func TestExplainSQL(t *testing.T) {
	tests := []struct {
		name        string
		sql         string
		explanation string
		err         error
		wantCode    codes.Code
	}{
		{
			name:        "explanation returned verbatim",
			sql:         "SELECT COUNT(*) FROM users",
			explanation: "This query counts the total number of rows in the users table.",
			wantCode:    codes.OK,
		},
		{
			name:     "engine fault maps to internal",
			sql:      "SELECT 1",
			err:      errors.New("explain timed out"),
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&fakeEngine{
				explain: func(ctx context.Context, sql string) (string, error) {
					if sql != tt.sql {
						t.Errorf("engine received sql %q, want %q", sql, tt.sql)
					}
					return tt.explanation, tt.err
				},
			})

			resp, err := s.ExplainSQL(context.Background(), &vannapb.ExplainSQLRequest{Sql: tt.sql})

			if tt.wantCode == codes.OK {
				if err != nil {
					t.Fatalf("ExplainSQL returned error: %v", err)
				}
				if resp.GetExplanation() != tt.explanation {
					t.Errorf("explanation = %q, want %q", resp.GetExplanation(), tt.explanation)
				}
				return
			}

			st, ok := status.FromError(err)
			if !ok {
				t.Fatalf("error is not a gRPC status: %v", err)
			}
			if st.Code() != tt.wantCode {
				t.Errorf("status code = %v, want %v", st.Code(), tt.wantCode)
			}
			if resp.GetExplanation() != "" {
				t.Errorf("explanation on fault = %q, want empty", resp.GetExplanation())
			}
		})
	}
}

func TestTrain(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		err         error
		wantSuccess bool
		wantMessage string
		wantCode    codes.Code
	}{
		{
			name:        "successful training",
			data:        "CREATE TABLE users (id INT PRIMARY KEY)",
			wantSuccess: true,
			wantMessage: "",
			wantCode:    codes.OK,
		},
		{
			name:        "training fault sets flag false and carries fault text",
			data:        "bad payload",
			err:         errors.New("schema mismatch"),
			wantSuccess: false,
			wantMessage: "schema mismatch",
			wantCode:    codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotData string
			s := New(&fakeEngine{
				train: func(ctx context.Context, data string) error {
					gotData = data
					return tt.err
				},
			})

			resp, err := s.Train(context.Background(), &vannapb.TrainRequest{Data: tt.data})

			if gotData != tt.data {
				t.Errorf("engine received data %q, want %q", gotData, tt.data)
			}

			if tt.wantCode == codes.OK {
				if err != nil {
					t.Fatalf("Train returned error: %v", err)
				}
			} else {
				st, ok := status.FromError(err)
				if !ok {
					t.Fatalf("error is not a gRPC status: %v", err)
				}
				if st.Code() != tt.wantCode {
					t.Errorf("status code = %v, want %v", st.Code(), tt.wantCode)
				}
				if st.Message() != tt.err.Error() {
					t.Errorf("status message = %q, want %q", st.Message(), tt.err.Error())
				}
			}

			if resp.GetSuccess() != tt.wantSuccess {
				t.Errorf("success = %v, want %v", resp.GetSuccess(), tt.wantSuccess)
			}
			if resp.GetMessage() != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.GetMessage(), tt.wantMessage)
			}
		})
	}
}

// TestConcurrentCalls drives many handlers in parallel and checks that each
// response matches its own request, with a failing call in the mix leaving
// the others untouched.
func TestConcurrentCalls(t *testing.T) {
	s := New(&fakeEngine{
		generate: func(ctx context.Context, question string, dbContext map[string]string) (string, error) {
			if strings.HasPrefix(question, "fail") {
				return "", fmt.Errorf("engine fault for %s", question)
			}
			return "SQL for " + question, nil
		},
	})

	const n = 50
	var wg sync.WaitGroup
	errc := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			question := fmt.Sprintf("question-%d", i)
			if i%10 == 0 {
				question = fmt.Sprintf("fail-%d", i)
			}

			resp, err := s.GenerateSQL(context.Background(), &vannapb.GenerateSQLRequest{Question: question})

			if strings.HasPrefix(question, "fail") {
				st, ok := status.FromError(err)
				if !ok || st.Code() != codes.Internal {
					errc <- fmt.Errorf("%s: expected internal status, got %v", question, err)
					return
				}
				want := "engine fault for " + question
				if st.Message() != want {
					errc <- fmt.Errorf("%s: status message %q, want %q", question, st.Message(), want)
				}
				return
			}

			if err != nil {
				errc <- fmt.Errorf("%s: unexpected error %v", question, err)
				return
			}
			if want := "SQL for " + question; resp.GetSql() != want {
				errc <- fmt.Errorf("%s: got sql %q, want %q", question, resp.GetSql(), want)
			}
		}(i)
	}

	wg.Wait()
	close(errc)
	for err := range errc {
		t.Error(err)
	}
}
