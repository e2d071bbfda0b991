package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddTask(t *testing.T) {
	task, err := NewAddTask(4, 4)
	require.NoError(t, err)
	assert.Equal(t, TypeMathAdd, task.Type())

	var p AddPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 4, p.Y)
}

func TestHandleAddTask(t *testing.T) {
	task, err := NewAddTask(2, 3)
	require.NoError(t, err)

	require.NoError(t, HandleAddTask(context.Background(), task))
}

func TestHandleAddTask_BadPayload(t *testing.T) {
	task := asynq.NewTask(TypeMathAdd, []byte("not json"))

	require.Error(t, HandleAddTask(context.Background(), task))
}
