package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	toolsv1 "github.com/outreachkit/prospector/proto"

	"github.com/outreachkit/prospector/pkg/resilience"
	"github.com/outreachkit/prospector/pkg/tools"
)

// GRPCAdapter binds an in-house provider service speaking the
// ToolProvider API.
type GRPCAdapter struct {
	conn       *grpc.ClientConn
	client     toolsv1.ToolProviderClient
	idempotent bool
}

// NewGRPCAdapter connects to a provider service.
func NewGRPCAdapter(addr string, idempotent bool) (*GRPCAdapter, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tool provider at %s: %w", addr, err)
	}
	return &GRPCAdapter{
		conn:       conn,
		client:     toolsv1.NewToolProviderClient(conn),
		idempotent: idempotent,
	}, nil
}

// Invoke forwards the op to the provider service.
func (a *GRPCAdapter) Invoke(ctx context.Context, op string, params map[string]any) (*tools.Result, error) {
	paramsJSON, err := tools.CanonicalParams(params)
	if err != nil {
		return nil, resilience.NewError(resilience.ClassInput, err)
	}

	resp, err := a.client.Invoke(ctx, &toolsv1.InvokeToolRequest{
		Op:         op,
		ParamsJson: string(paramsJSON),
	})
	if err != nil {
		return nil, classifyGRPCError(op, err)
	}

	result := &tools.Result{CostUSD: resp.CostUsd}
	if resp.ItemsJson != "" {
		if err := json.Unmarshal([]byte(resp.ItemsJson), &result.Items); err != nil {
			return nil, resilience.Transient(fmt.Errorf("decode items from provider for %s: %w", op, err))
		}
	}
	if resp.DataJson != "" {
		if err := json.Unmarshal([]byte(resp.DataJson), &result.Data); err != nil {
			return nil, resilience.Transient(fmt.Errorf("decode data from provider for %s: %w", op, err))
		}
	}
	return result, nil
}

// Idempotent reports the configured retry safety.
func (a *GRPCAdapter) Idempotent() bool {
	return a.idempotent
}

// Close releases the gRPC connection.
func (a *GRPCAdapter) Close() error {
	return a.conn.Close()
}

// classifyGRPCError maps gRPC status codes onto failure classes.
func classifyGRPCError(op string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return resilience.Transient(fmt.Errorf("provider call %s: %w", op, err))
	}

	cause := fmt.Errorf("provider call %s: %s", op, st.Message())
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Aborted, codes.Internal:
		return resilience.Transient(cause)
	case codes.ResourceExhausted:
		return resilience.RateLimited(cause, 0)
	case codes.InvalidArgument:
		return resilience.NewError(resilience.ClassInput, cause)
	default:
		return resilience.Permanent(cause)
	}
}
