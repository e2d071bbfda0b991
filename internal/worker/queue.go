package worker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Queue submits tasks to the Redis-backed broker.
type Queue struct {
	client *asynq.Client
}

func NewQueue(redisAddr string) *Queue {
	return &Queue{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

// SubmitAdd enqueues an addition task and returns its handle.
func (q *Queue) SubmitAdd(ctx context.Context, x, y int) (string, error) {
	task, err := NewAddTask(x, y)
	if err != nil {
		return "", err
	}

	info, err := q.client.EnqueueContext(ctx, task, asynq.TaskID(uuid.NewString()))
	if err != nil {
		return "", fmt.Errorf("failed to enqueue %s: %w", TypeMathAdd, err)
	}

	return info.ID, nil
}

func (q *Queue) Close() error {
	return q.client.Close()
}
