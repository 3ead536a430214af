package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/odyssey-erp/hris-access/internal/access"
	"github.com/odyssey-erp/hris-access/internal/session"
)

func (p *Portal) login(ctx context.Context, args []string) int {
	fs := p.flags("login")
	username := fs.StringP("username", "u", "", "account username")
	password := fs.StringP("password", "p", "", "account password (read from stdin when empty)")
	asJSON := fs.Bool("json", false, "print the user as JSON")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	if *username == "" && fs.NArg() > 0 {
		*username = fs.Arg(0)
	}
	if *password == "" {
		line, err := p.readLine("Password: ")
		if err != nil {
			p.errorf("read password: %v", err)
			return ExitError
		}
		*password = line
	}
	user, err := p.store.LoginStaff(ctx, session.Credentials{Username: *username, Password: *password})
	return p.signedIn(user, err, *asJSON)
}

func (p *Portal) demoLogin(ctx context.Context, args []string) int {
	fs := p.flags("demo-login")
	asJSON := fs.Bool("json", false, "print the user as JSON")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	role := "admin"
	if fs.NArg() > 0 {
		role = fs.Arg(0)
	}
	user, err := p.store.DemoLogin(ctx, role)
	return p.signedIn(user, err, *asJSON)
}

func (p *Portal) signedIn(user *access.User, err error, asJSON bool) int {
	if err != nil {
		_, _ = fmt.Fprintln(p.stderr, session.DisplayMessage(err))
		return ExitError
	}
	if asJSON {
		return p.printJSON(user)
	}
	_, _ = fmt.Fprintf(p.stdout, "Signed in as %s (%s)\n", user.Name, user.Role)
	return ExitOK
}

func (p *Portal) logout(ctx context.Context, args []string) int {
	fs := p.flags("logout")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	if err := p.store.Logout(ctx, ""); err != nil {
		p.errorf("logout: %v", err)
		return ExitError
	}
	_, _ = fmt.Fprintln(p.stdout, "Signed out")
	return ExitOK
}

func (p *Portal) whoami(ctx context.Context, args []string) int {
	fs := p.flags("whoami")
	asJSON := fs.Bool("json", false, "print the user as JSON")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	if !p.requireSession(ctx) {
		return ExitError
	}
	user := p.store.CurrentUser()
	if *asJSON {
		return p.printJSON(user)
	}
	_, _ = fmt.Fprintf(p.stdout, "Name:     %s\n", user.Name)
	_, _ = fmt.Fprintf(p.stdout, "Username: %s\n", user.Username)
	if user.Email != "" {
		_, _ = fmt.Fprintf(p.stdout, "Email:    %s\n", user.Email)
	}
	_, _ = fmt.Fprintf(p.stdout, "Role:     %s\n", user.Role)
	if len(user.Roles) > 1 {
		_, _ = fmt.Fprintf(p.stdout, "Roles:    %s\n", strings.Join(user.Roles, ", "))
	}
	if len(user.Personnel) > 0 && user.Personnel[0].Department != nil {
		_, _ = fmt.Fprintf(p.stdout, "Department: %s\n", user.Personnel[0].Department.DepartmentName)
	}
	_, _ = fmt.Fprintf(p.stdout, "Permissions: %d\n", len(user.Permissions))
	if exp, ok := p.store.TokenExpiry(ctx); ok {
		_, _ = fmt.Fprintf(p.stdout, "Token expires: %s\n", exp.Format(time.RFC3339))
	}
	return ExitOK
}

func (p *Portal) refresh(ctx context.Context, args []string) int {
	fs := p.flags("refresh")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	if !p.requireSession(ctx) {
		return ExitError
	}
	if _, err := p.store.RefreshToken(ctx); err != nil {
		p.errorf("refresh: %s", session.DisplayMessage(err))
		return ExitError
	}
	if exp, ok := p.store.TokenExpiry(ctx); ok {
		_, _ = fmt.Fprintf(p.stdout, "Token refreshed, expires %s\n", exp.Format(time.RFC3339))
		return ExitOK
	}
	_, _ = fmt.Fprintln(p.stdout, "Token refreshed")
	return ExitOK
}

func (p *Portal) passwd(ctx context.Context, args []string) int {
	fs := p.flags("passwd")
	current := fs.String("current", "", "current password")
	next := fs.String("new", "", "new password")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	if !p.requireSession(ctx) {
		return ExitError
	}
	if err := p.store.ChangePassword(ctx, *current, *next); err != nil {
		_, _ = fmt.Fprintln(p.stderr, session.DisplayMessage(err))
		return ExitError
	}
	_, _ = fmt.Fprintln(p.stdout, "Password changed")
	return ExitOK
}
