//go:build !windows

package editor

var defaultEditors = []string{
	"nano",
	"vim",
	"vi",
}
