package redisstore

// Key layout under the configured prefix:
//
//	{prefix}lists              zset  list id -> insertion sequence
//	{prefix}list:{id}          hash  name
//	{prefix}list:{id}:tasks    zset  task id -> insertion sequence
//	{prefix}task:{id}          hash  name, status, created
//	{prefix}owners             hash  task id -> list id
//	{prefix}seq                counter for insertion sequences
type keys struct {
	prefix string
}

func (k keys) lists() string              { return k.prefix + "lists" }
func (k keys) list(id string) string      { return k.prefix + "list:" + id }
func (k keys) listTasks(id string) string { return k.prefix + "list:" + id + ":tasks" }
func (k keys) task(id string) string      { return k.prefix + "task:" + id }
func (k keys) owners() string             { return k.prefix + "owners" }
func (k keys) seq() string                { return k.prefix + "seq" }

// ids is the set of every identifier ever assigned. Members are never removed.
func (k keys) ids() string { return k.prefix + "ids" }
