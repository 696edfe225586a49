package sqlstore

import (
	"time"

	"github.com/jsamuelsen11/go-todo-lists/internal/domain"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/list"
	"github.com/jsamuelsen11/go-todo-lists/internal/domain/task"
)

func toDomainTask(r *taskRow) task.Task {
	return task.Task{
		Identifier:   domain.Identifier(r.ID),
		Name:         r.Name,
		Status:       task.Status(r.Status),
		CreationDate: time.Unix(0, r.CreatedUnixNano),
	}
}

func toDomainTasks(rows []taskRow) []task.Task {
	tasks := make([]task.Task, len(rows))
	for i := range rows {
		tasks[i] = toDomainTask(&rows[i])
	}
	return tasks
}

// toDomainLists joins list rows with their task rows. Both inputs are in
// insertion order and so is every List's Tasks.
func toDomainLists(lists []listRow, tasks []taskRow) []list.List {
	owned := make(map[string][]task.Task, len(lists))
	for i := range tasks {
		owned[tasks[i].ListID] = append(owned[tasks[i].ListID], toDomainTask(&tasks[i]))
	}

	out := make([]list.List, len(lists))
	for i, r := range lists {
		ts := owned[r.ID]
		if ts == nil {
			ts = []task.Task{}
		}
		out[i] = list.List{
			Identifier: domain.Identifier(r.ID),
			Name:       r.Name,
			Tasks:      ts,
		}
	}
	return out
}

func fromDomainList(l *list.List) listRow {
	return listRow{ID: l.Identifier.String(), Name: l.Name}
}

func fromDomainTask(listID domain.Identifier, t *task.Task) taskRow {
	return taskRow{
		ID:              t.Identifier.String(),
		ListID:          listID.String(),
		Name:            t.Name,
		Status:          t.Status.String(),
		CreatedUnixNano: t.CreationDate.UnixNano(),
	}
}
