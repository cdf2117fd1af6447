// Package gateway implements the request surface the adapter is invoked
// through: a small JSON envelope, a method dispatcher for device.status
// and device.info, and a line-delimited session loop. Transport to the
// remote gateway (sockets, reconnects, session lifecycle) stays outside
// this package.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devlink-app/agent/internal/models"
)

// Methods the dispatcher serves.
const (
	MethodStatus = "device.status"
	MethodInfo   = "device.info"
)

// Error codes, following the JSON-RPC 2.0 numbering.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// Request is one gateway request. ID is optional; the dispatcher assigns
// one when it is missing so every response is correlatable.
type Request struct {
	ID     string          `json:"id,omitempty"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response answers one request. Exactly one of Result and Error is set.
type Response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

// Error is the error object of a failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway error %d: %s", e.Code, e.Message)
}

// Adapter is the payload source the dispatcher invokes.
type Adapter interface {
	Status(ctx context.Context) models.StatusPayload
	Info(ctx context.Context) models.InfoPayload
}

// Dispatcher routes parsed requests to the adapter.
type Dispatcher struct {
	adapter Adapter
	logger  *zap.Logger
}

// NewDispatcher creates a Dispatcher. Pass nil for no logging.
func NewDispatcher(adapter Adapter, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{adapter: adapter, logger: logger}
}

// Handle parses one raw request and returns its response. Malformed input
// and unknown methods produce error responses, never a dropped request.
func (d *Dispatcher) Handle(ctx context.Context, raw []byte) Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		d.logger.Warn("Malformed request", zap.Error(err))
		return errResponse("", CodeParseError, "parse error")
	}
	if req.Method == "" {
		return errResponse(req.ID, CodeInvalidRequest, "missing method")
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	d.logger.Debug("Dispatching request",
		zap.String("id", req.ID),
		zap.String("method", req.Method))

	switch req.Method {
	case MethodStatus:
		return d.result(req.ID, d.adapter.Status(ctx))
	case MethodInfo:
		return d.result(req.ID, d.adapter.Info(ctx))
	default:
		return errResponse(req.ID, CodeMethodNotFound,
			fmt.Sprintf("method not found: %s", req.Method))
	}
}

// result marshals a payload into a successful response.
func (d *Dispatcher) result(id string, payload any) Response {
	data, err := json.Marshal(payload)
	if err != nil {
		d.logger.Error("Failed to marshal payload", zap.Error(err))
		return errResponse(id, CodeInternalError, "internal error")
	}
	return Response{ID: id, Result: data}
}

func errResponse(id string, code int, message string) Response {
	return Response{ID: id, Error: &Error{Code: code, Message: message}}
}
