package redisstore

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
)

// Task hash fields.
const (
	fieldName    = "name"
	fieldStatus  = "status"
	fieldCreated = "created"
)

func taskFields(t *task.Task) map[string]any {
	return map[string]any{
		fieldName:    t.Name,
		fieldStatus:  t.Status.String(),
		fieldCreated: strconv.FormatInt(t.CreationDate.UnixNano(), 10),
	}
}

func toDomainTask(id string, h map[string]string) (task.Task, error) {
	if len(h) == 0 {
		return task.Task{}, fmt.Errorf("task %s: hash missing", id)
	}
	nanos, err := strconv.ParseInt(h[fieldCreated], 10, 64)
	if err != nil {
		return task.Task{}, fmt.Errorf("task %s: parsing created: %w", id, err)
	}
	return task.Task{
		Identifier:   domain.Identifier(id),
		Name:         h[fieldName],
		Status:       task.Status(h[fieldStatus]),
		CreationDate: time.Unix(0, nanos),
	}, nil
}
