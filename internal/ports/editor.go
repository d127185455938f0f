package ports

// EditorOpener edits a file in an external editor
type EditorOpener interface {
	// Open edits path and returns when the editor exits.
	// cliEditor is the editor specified via CLI flag (takes precedence)
	Open(path string, cliEditor string) error
}
