package shell

import (
	"strings"

	"go.trai.ch/gdmcp/internal/core/domain"
)

// Invocation is one headless run of the operations script.
type Invocation struct {
	Executable  string
	ProjectPath string
	ScriptPath  string
	Operation   string
	// Params is the compact JSON parameter blob, passed as a single argument.
	Params     string
	DebugGodot bool
}

// CommandLine joins the invocation into one shell command line, quoting every
// path and the parameter blob with quote.
//
//	<exe> --headless --path <project> --script <script> <operation> <params> [--debug-godot]
func (inv Invocation) CommandLine(quote Quoter) string {
	parts := []string{
		quote(inv.Executable),
		domain.FlagHeadless,
		domain.FlagPath, quote(inv.ProjectPath),
		domain.FlagScript, quote(inv.ScriptPath),
		inv.Operation,
		quote(inv.Params),
	}
	if inv.DebugGodot {
		parts = append(parts, domain.FlagDebug)
	}
	return strings.Join(parts, " ")
}
