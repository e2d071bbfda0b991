// Package worker holds the background task queue. It is deliberately
// separate from the auth core; the API only ever submits work through the
// Queue and never waits for results.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

// TypeMathAdd identifies the addition task on the queue.
const TypeMathAdd = "math:add"

// AddPayload is the payload of a math:add task.
type AddPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewAddTask builds a math:add task for the given operands.
func NewAddTask(x, y int) (*asynq.Task, error) {
	payload, err := json.Marshal(AddPayload{X: x, Y: y})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal add payload: %w", err)
	}
	return asynq.NewTask(TypeMathAdd, payload), nil
}

// HandleAddTask processes a math:add task.
func HandleAddTask(ctx context.Context, t *asynq.Task) error {
	var p AddPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal add payload: %w", err)
	}

	slog.Info("add task done", "x", p.X, "y", p.Y, "sum", p.X+p.Y)
	return nil
}
