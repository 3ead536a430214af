// Package cli implements the hris command line portal.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/guard"
	"github.com/odyssey-erp/hris-access/internal/menu"
	"github.com/odyssey-erp/hris-access/internal/platform/kv"
	"github.com/odyssey-erp/hris-access/internal/session"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitUsage  = 2
	ExitDenied = 3
)

// Options wires the portal to its session and output streams.
type Options struct {
	Store   *session.Store
	Storage kv.Storage
	Routes  *guard.Routes
	Menu    []menu.Item
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Portal runs portal subcommands against a session store.
type Portal struct {
	store     *session.Store
	evaluator *access.Evaluator
	guard     *guard.Guard
	menu      *menu.Builder
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string) int
}

// New constructs a Portal.
func New(opts Options) (*Portal, error) {
	if opts.Store == nil {
		return nil, errors.New("cli: session store is required")
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Storage == nil {
		opts.Storage = kv.NewMemory()
	}
	g := guard.New(opts.Store, nil)
	if opts.Routes != nil {
		g.Routes = opts.Routes
	}
	evaluator := access.NewEvaluator(opts.Store)
	return &Portal{
		store:     opts.Store,
		evaluator: evaluator,
		guard:     g,
		menu:      &menu.Builder{Storage: opts.Storage, Accessor: evaluator, Items: opts.Menu},
		stdin:     opts.Stdin,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
	}, nil
}

func (p *Portal) commands() []command {
	return []command{
		{"login", "Sign in with username and password", p.login},
		{"demo-login", "Sign in with a demo account (admin, hr, employee)", p.demoLogin},
		{"logout", "Sign out and clear the stored session", p.logout},
		{"whoami", "Show the signed-in user", p.whoami},
		{"menu", "Show the navigation menu for the signed-in user", p.showMenu},
		{"can", "Check whether routes may be opened", p.can},
		{"routes", "List the route table", p.routes},
		{"refresh", "Refresh the access token", p.refresh},
		{"passwd", "Change the signed-in user's password", p.passwd},
		{"permissions", "List permissions of the user, a group or the catalog", p.permissions},
		{"roles", "List roles known to the backend", p.roles},
	}
}

// Run dispatches args[0] and returns the process exit code.
func (p *Portal) Run(ctx context.Context, args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		p.usage(p.stdout)
		if len(args) == 0 {
			return ExitUsage
		}
		return ExitOK
	}
	for _, cmd := range p.commands() {
		if cmd.name == args[0] {
			return cmd.run(ctx, args[1:])
		}
	}
	p.errorf("unknown command %q", args[0])
	p.usage(p.stderr)
	return ExitUsage
}

func (p *Portal) usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage: hris <command> [flags]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Commands:")
	for _, cmd := range p.commands() {
		_, _ = fmt.Fprintf(w, "  %-12s %s\n", cmd.name, cmd.summary)
	}
}

func (p *Portal) flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(p.stderr)
	return fs
}

func (p *Portal) parse(fs *pflag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK, false
		}
		return ExitUsage, false
	}
	return ExitOK, true
}

func (p *Portal) errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.stderr, "hris: "+format+"\n", args...)
}

func (p *Portal) printJSON(v any) int {
	enc := json.NewEncoder(p.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		p.errorf("encode json: %v", err)
		return ExitError
	}
	return ExitOK
}

// requireSession expires an idle session first, then reports the pending
// logout notice when nobody is signed in.
func (p *Portal) requireSession(ctx context.Context) bool {
	if _, err := p.store.ExpireIfIdle(ctx); err != nil {
		p.errorf("%v", err)
		return false
	}
	if p.store.IsAuthenticated(ctx) {
		return true
	}
	if reason, ok := p.store.GetAndClearLogoutReason(ctx); ok {
		if msg := session.LogoutReasonMessage(reason); msg != "" {
			_, _ = fmt.Fprintln(p.stderr, msg)
		}
	}
	p.errorf("not signed in; run \"hris login\"")
	return false
}

func (p *Portal) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.stderr, prompt)
	line, err := bufio.NewReader(p.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
