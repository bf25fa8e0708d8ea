// Package shell builds engine command lines and runs them as child processes.
package shell

import "strings"

// Quoter wraps one argument so the platform shell passes it through as a single word.
type Quoter func(arg string) string

// QuotePOSIX wraps arg in single quotes, closing and reopening the quote around each embedded one.
func QuotePOSIX(arg string) string {
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// cmdMeta are the characters cmd.exe interprets outside a quoted region.
const cmdMeta = `()%!^"<>&|`

// QuoteWindows quotes arg for a command line that cmd.exe hands to a child process.
// The argument is first quoted for the child's argv parser, then every cmd.exe
// metacharacter is caret-escaped so cmd.exe never enters a quoted region and
// passes the argument through unchanged.
func QuoteWindows(arg string) string {
	return escapeCmd(QuoteArgv(arg))
}

// QuoteArgv quotes arg following the CommandLineToArgvW rules: a run of n
// backslashes before a double quote is written as 2n+1 backslashes, and a
// trailing run is doubled before the closing quote.
func QuoteArgv(arg string) string {
	var b strings.Builder
	b.Grow(len(arg) + 2)
	b.WriteByte('"')
	slashes := 0
	for i := range len(arg) {
		c := arg[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			b.WriteString(strings.Repeat(`\`, slashes+1))
			slashes = 0
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	b.WriteString(strings.Repeat(`\`, slashes))
	b.WriteByte('"')
	return b.String()
}

func escapeCmd(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := range len(s) {
		if strings.IndexByte(cmdMeta, s[i]) >= 0 {
			b.WriteByte('^')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// QuoterFor returns the quoting strategy for goos.
func QuoterFor(goos string) Quoter {
	if goos == "windows" {
		return QuoteWindows
	}
	return QuotePOSIX
}
