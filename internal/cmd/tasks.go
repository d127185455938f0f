package cmd

// TasksCmd manages the task directory
type TasksCmd struct {
	Add  TasksAddCmd  `cmd:"add" help:"Add a new task"`
	Del  TasksDelCmd  `cmd:"del" help:"Delete a task (its recorded sessions are kept)"`
	Done TasksDoneCmd `cmd:"done" help:"Toggle a task's completion for a day"`
	List TasksListCmd `cmd:"list" help:"List tasks planned for a day" default:"1"`
	Plan TasksPlanCmd `cmd:"plan" help:"Plan an existing task on a day"`
}
