package access

import (
	"net/url"
	"strings"
)

const (
	defaultRole   = "User"
	avatarBaseURL = "https://ui-avatars.com/api/"
)

// Enhance returns a copy of u with the display fields filled in. It is
// idempotent: enhancing an already enhanced user yields the same fields.
func Enhance(u User) User {
	out := *u.Clone()

	out.Name = u.Username
	if len(u.Personnel) > 0 {
		p := u.Personnel[0]
		if name := strings.TrimSpace(p.FirstName + " " + p.LastName); name != "" {
			out.Name = name
		}
	}

	// Older payloads carry a single role instead of the roles list. The
	// fallback role is never promoted so a second pass changes nothing.
	if len(out.Roles) == 0 && u.Role != "" && u.Role != defaultRole {
		out.Roles = []string{u.Role}
	}
	if len(out.Roles) > 0 {
		out.Role = HumanizeRole(out.Roles[0])
	} else {
		out.Role = defaultRole
	}

	if u.Avatar == "" {
		out.Avatar = AvatarURL(out.Name)
	}
	return out
}

// HumanizeRole turns a role identifier such as "hr_manager" into "hr manager".
func HumanizeRole(role string) string {
	role = strings.NewReplacer("_", " ", "-", " ").Replace(role)
	return strings.Join(strings.Fields(role), " ")
}

// AvatarURL builds the deterministic default avatar for a display name.
func AvatarURL(name string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	return avatarBaseURL + "?name=" + escaped + "&background=0D8ABC&color=fff&size=40"
}
