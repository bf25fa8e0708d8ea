package shell_test

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gdmcp/internal/adapters/shell"
)

var quoteInputs = []string{
	"plain",
	"with spaces",
	"it's",
	`say "hi"`,
	`'both' "kinds"`,
	"$HOME `date` \\n",
	`C:\path with space\`,
	`trailing\\`,
	`a\\"b`,
	`100% & more | less > x ^ (y) !z`,
	`{"scene_path":"scenes/it's \"main\".tscn","properties":{"name":"O'Brien"}}`,
	"",
}

// uncaret removes cmd.exe caret escapes. It fails on a metacharacter cmd.exe would interpret.
func uncaret(t *testing.T, line string) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '^' {
			require.Less(t, i+1, len(line), "dangling caret in %s", line)
			i++
			b.WriteByte(line[i])
			continue
		}
		require.NotContains(t, `()%!"<>&|`, string(c), "unescaped %q in %s", c, line)
		b.WriteByte(c)
	}
	return b.String()
}

// splitArgv splits line into arguments following the CommandLineToArgvW rules.
func splitArgv(line string) []string {
	var (
		args     []string
		cur      strings.Builder
		inQuotes bool
		inArg    bool
	)
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == '\\':
			n := 0
			for i < len(line) && line[i] == '\\' {
				n++
				i++
			}
			if i < len(line) && line[i] == '"' {
				cur.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 1 {
					cur.WriteByte('"')
					i++
				}
			} else {
				cur.WriteString(strings.Repeat(`\`, n))
			}
			inArg = true
		case c == '"':
			inQuotes = !inQuotes
			inArg = true
			i++
		case (c == ' ' || c == '\t') && !inQuotes:
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
			i++
		default:
			cur.WriteByte(c)
			inArg = true
			i++
		}
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args
}

func TestQuotePOSIX(t *testing.T) {
	assert.Equal(t, `'plain'`, shell.QuotePOSIX("plain"))
	assert.Equal(t, `'it'\''s'`, shell.QuotePOSIX("it's"))
	assert.Equal(t, `'say "hi"'`, shell.QuotePOSIX(`say "hi"`))
	assert.Equal(t, `''`, shell.QuotePOSIX(""))
}

func TestQuoteArgv(t *testing.T) {
	assert.Equal(t, `"plain"`, shell.QuoteArgv("plain"))
	assert.Equal(t, `"say \"hi\""`, shell.QuoteArgv(`say "hi"`))
	assert.Equal(t, `"a\\\"b"`, shell.QuoteArgv(`a\"b`))
	assert.Equal(t, `"C:\dir\\"`, shell.QuoteArgv(`C:\dir\`))
	assert.Equal(t, `""`, shell.QuoteArgv(""))

	for _, in := range quoteInputs {
		assert.Equal(t, []string{in}, splitArgv(shell.QuoteArgv(in)), "argument %s", in)
	}
}

func TestQuoteWindows(t *testing.T) {
	assert.Equal(t, `^"plain^"`, shell.QuoteWindows("plain"))
	assert.Equal(t, `^"it's^"`, shell.QuoteWindows("it's"))
	assert.Equal(t, `^"say \^"hi\^"^"`, shell.QuoteWindows(`say "hi"`))
	assert.Equal(t, `^"a ^& b^"`, shell.QuoteWindows("a & b"))

	for _, in := range quoteInputs {
		t.Run(in, func(t *testing.T) {
			args := splitArgv(uncaret(t, shell.QuoteWindows(in)))
			assert.Equal(t, []string{in}, args)
		})
	}
}

func TestQuoterFor(t *testing.T) {
	assert.Equal(t, `^"x^"`, shell.QuoterFor("windows")("x"))
	assert.Equal(t, `'x'`, shell.QuoterFor("linux")("x"))
	assert.Equal(t, `'x'`, shell.QuoterFor("darwin")("x"))
}

func TestQuotePOSIX_RoundTripThroughShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	for _, in := range quoteInputs {
		t.Run(in, func(t *testing.T) {
			out, err := exec.CommandContext(context.Background(), "sh", "-c", "printf '%s' "+shell.QuotePOSIX(in)).Output()
			require.NoError(t, err)
			assert.Equal(t, in, string(out))
		})
	}
}
