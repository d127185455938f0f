package cmd

// SessionsCmd inspects recorded work and break sessions
type SessionsCmd struct {
	Clear  SessionsClearCmd  `cmd:"clear" help:"Delete all tasks, sessions and completions"`
	Export SessionsExportCmd `cmd:"export" help:"Export all data as JSON"`
	List   SessionsListCmd   `cmd:"list" help:"List recorded sessions" default:"1"`
}
