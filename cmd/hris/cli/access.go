package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"

	"github.com/odyssey-erp/hris-access/internal/guard"
	"github.com/odyssey-erp/hris-access/internal/menu"
	"github.com/odyssey-erp/hris-access/internal/permission"
	"github.com/odyssey-erp/hris-access/internal/session"
)

func (p *Portal) showMenu(ctx context.Context, args []string) int {
	fs := p.flags("menu")
	flat := fs.Bool("flat", false, "list reachable entries one per line")
	path := fs.String("path", "", "current path, for the job portal public mode")
	public := fs.Bool("public", false, "enter job portal public mode before building")
	asJSON := fs.Bool("json", false, "print the menu as JSON")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	if _, err := p.store.ExpireIfIdle(ctx); err != nil {
		p.errorf("%v", err)
		return ExitError
	}
	if *public {
		if err := p.menu.EnterPublicMode(ctx); err != nil {
			p.errorf("public mode: %v", err)
			return ExitError
		}
	}
	items, err := p.menu.Build(ctx, *path)
	if err != nil {
		p.errorf("menu: %v", err)
		return ExitError
	}
	if *flat {
		items = menu.Flatten(items)
	}
	if *asJSON {
		return p.printJSON(items)
	}
	if len(items) == 0 {
		_, _ = fmt.Fprintln(p.stderr, "No menu entries available")
		return ExitOK
	}
	if *flat {
		for _, item := range items {
			_, _ = fmt.Fprintf(p.stdout, "%s\t%s\n", item.Path, item.Name)
		}
		return ExitOK
	}
	writeTree(p.stdout, items, 0)
	return ExitOK
}

func writeTree(w io.Writer, items []menu.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		label := item.Name
		if item.Badge != "" {
			label += " [" + item.Badge + "]"
		}
		if item.Path != "" {
			_, _ = fmt.Fprintf(w, "%s%s (%s)\n", indent, label, item.Path)
		} else {
			_, _ = fmt.Fprintf(w, "%s%s\n", indent, label)
		}
		writeTree(w, item.Children, depth+1)
	}
}

func (p *Portal) can(ctx context.Context, args []string) int {
	fs := p.flags("can")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	if fs.NArg() == 0 {
		p.errorf("can: at least one path is required")
		return ExitUsage
	}
	if _, err := p.store.ExpireIfIdle(ctx); err != nil {
		p.errorf("%v", err)
		return ExitError
	}
	code := ExitOK
	for _, path := range fs.Args() {
		d := p.guard.Navigate(ctx, path)
		if d.Allowed {
			_, _ = fmt.Fprintf(p.stdout, "allow  %s\n", path)
			continue
		}
		code = ExitDenied
		_, _ = fmt.Fprintf(p.stdout, "deny   %s -> %s (%s)\n", path, d.RedirectTo, d.Reason)
	}
	return code
}

type routeView struct {
	Path        string                  `json:"path"`
	Permissions []permission.Permission `json:"permissions,omitempty"`
	RedirectTo  string                  `json:"redirect_to,omitempty"`
	Allowed     bool                    `json:"allowed"`
}

func (p *Portal) routes(ctx context.Context, args []string) int {
	fs := p.flags("routes")
	asJSON := fs.Bool("json", false, "print the table as JSON")
	onlyAllowed := fs.Bool("allowed", false, "only list routes the current user may open")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	table := p.guard.Routes
	if table == nil {
		table = guard.DefaultRoutes()
	}
	views := make([]routeView, 0)
	for _, r := range table.All() {
		allowed := r.RedirectTo == "" && p.evaluator.CanAccessRoute(r.Permissions)
		if r.Public() {
			allowed = true
		}
		if *onlyAllowed && !allowed {
			continue
		}
		views = append(views, routeView{Path: r.Path, Permissions: r.Permissions, RedirectTo: r.RedirectTo, Allowed: allowed})
	}
	if *asJSON {
		return p.printJSON(views)
	}
	tw := tabwriter.NewWriter(p.stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PATH\tACCESS\tREQUIRES")
	for _, v := range views {
		access := "deny"
		if v.Allowed {
			access = "allow"
		}
		requires := strings.Join(permission.Strings(v.Permissions), ", ")
		switch {
		case v.RedirectTo != "":
			access = "redirect"
			requires = "-> " + v.RedirectTo
		case requires == "":
			requires = "(public)"
		}
		_, _ = fmt.Fprintf(tw, "/%s\t%s\t%s\n", strings.TrimPrefix(v.Path, "/"), access, requires)
	}
	_ = tw.Flush()
	return ExitOK
}

func (p *Portal) permissions(ctx context.Context, args []string) int {
	fs := p.flags("permissions")
	group := fs.String("group", "", "list the members of a permission group")
	catalog := fs.Bool("catalog", false, "list the whole catalog by category")
	groups := fs.Bool("groups", false, "list permission group names")
	asJSON := fs.Bool("json", false, "print as JSON")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}

	switch {
	case *groups:
		names := permission.GroupNames()
		if *asJSON {
			return p.printJSON(names)
		}
		for _, name := range names {
			_, _ = fmt.Fprintln(p.stdout, name)
		}
		return ExitOK
	case *group != "":
		perms, err := permission.Group(permission.GroupName(*group))
		if err != nil {
			p.errorf("%v", err)
			return ExitError
		}
		return p.writePermissions(perms, *asJSON)
	case *catalog:
		grouped := permission.Grouped()
		if *asJSON {
			return p.printJSON(grouped)
		}
		for _, c := range grouped {
			_, _ = fmt.Fprintf(p.stdout, "%s\n", c.Category)
			for _, perm := range c.Permissions {
				_, _ = fmt.Fprintf(p.stdout, "  %-40s %s\n", perm, perm.DisplayName())
			}
		}
		return ExitOK
	}

	if !p.requireSession(ctx) {
		return ExitError
	}
	return p.writePermissions(p.evaluator.Permissions(), *asJSON)
}

func (p *Portal) writePermissions(perms []permission.Permission, asJSON bool) int {
	if asJSON {
		return p.printJSON(permission.Strings(perms))
	}
	for _, perm := range perms {
		_, _ = fmt.Fprintf(p.stdout, "%-40s %s\n", perm, perm.Description())
	}
	return ExitOK
}

type roleView struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Permissions []string `json:"permissions"`
}

func (p *Portal) roles(ctx context.Context, args []string) int {
	fs := p.flags("roles")
	asJSON := fs.Bool("json", false, "print as JSON")
	if code, ok := p.parse(fs, args); !ok {
		return code
	}
	if !p.requireSession(ctx) {
		return ExitError
	}
	var roles []roleView
	if err := p.store.Do(ctx, http.MethodGet, "/system/roles", nil, &roles); err != nil {
		if session.Unauthorized(err) {
			_, _ = fmt.Fprintln(p.stderr, "Session expired, please sign in again")
			return ExitError
		}
		_, _ = fmt.Fprintln(p.stderr, session.DisplayMessage(err))
		return ExitError
	}
	if *asJSON {
		return p.printJSON(roles)
	}
	tw := tabwriter.NewWriter(p.stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ROLE\tNAME\tPERMISSIONS")
	for _, r := range roles {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n", r.Name, r.DisplayName, len(r.Permissions))
	}
	_ = tw.Flush()
	return ExitOK
}
