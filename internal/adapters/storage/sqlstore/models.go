package sqlstore

// listRow is the persisted form of a List. Owned Tasks live in the tasks
// table and point back through list_id.
type listRow struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (listRow) TableName() string { return "lists" }

// taskRow is the persisted form of a Task. list_id is the reverse index that
// answers TaskOwner.
type taskRow struct {
	ID              string `gorm:"column:id;primaryKey"`
	ListID          string `gorm:"column:list_id;not null;index:idx_tasks_list_id"`
	Name            string `gorm:"column:name;not null"`
	Status          string `gorm:"column:status;not null"`
	CreatedUnixNano int64  `gorm:"column:created_unix_nano;not null"`
}

func (taskRow) TableName() string { return "tasks" }

// identifierRow records every identifier ever assigned to a List or Task.
// Rows are never deleted, so a freed identifier cannot be handed out again.
type identifierRow struct {
	ID   string `gorm:"column:id;primaryKey"`
	Kind string `gorm:"column:kind;not null"`
}

func (identifierRow) TableName() string { return "identifiers" }

const (
	kindList = "list"
	kindTask = "task"
)
