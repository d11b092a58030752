package permission

import (
	"fmt"

	"ministryshare/internal/shared/authorization"
	"ministryshare/internal/shared/logger"
)

// SeedDefaultPolicies installs the baseline role grants. Editors manage their
// own church's catalog and lending; admins additionally review registrations,
// administer accounts, and change site settings. AddPolicy is idempotent in
// casbin, so reseeding on startup is safe.
func SeedDefaultPolicies(e *Enforcer, log logger.Interface) error {
	admin := authorization.RoleAdmin.String()
	editor := authorization.RoleEditor.String()

	policies := [][3]string{
		{editor, "resource", "read"},
		{editor, "resource", "create"},
		{editor, "resource", "update"},
		{editor, "resource", "delete"},
		{editor, "resource", "import"},
		{editor, "tag", "read"},
		{editor, "request", "read"},
		{editor, "request", "create"},
		{editor, "request", "review"},
		{editor, "loan", "read"},
		{editor, "loan", "update"},
		{editor, "church", "read"},
		{editor, "church", "update"},

		{admin, "resource", "read"},
		{admin, "resource", "create"},
		{admin, "resource", "update"},
		{admin, "resource", "delete"},
		{admin, "resource", "import"},
		{admin, "tag", "read"},
		{admin, "tag", "create"},
		{admin, "tag", "update"},
		{admin, "tag", "delete"},
		{admin, "request", "read"},
		{admin, "request", "create"},
		{admin, "request", "review"},
		{admin, "loan", "read"},
		{admin, "loan", "update"},
		{admin, "church", "read"},
		{admin, "church", "create"},
		{admin, "church", "update"},
		{admin, "church", "delete"},
		{admin, "church", "review"},
		{admin, "user", "read"},
		{admin, "user", "create"},
		{admin, "user", "update"},
		{admin, "user", "delete"},
		{admin, "activity", "read"},
		{admin, "settings", "read"},
		{admin, "settings", "update"},
		{admin, "dashboard", "read"},
	}

	for _, p := range policies {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy [%s %s %s]: %w", p[0], p[1], p[2], err)
		}
	}

	log.Info("default permission policies seeded")
	return nil
}
