package authorization

// UserRole is the district-wide role of a user. Editors are scoped to their
// own church; admins have cross-church authority.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleEditor UserRole = "EDITOR"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleEditor
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleEditor
}

// CanActForChurch reports whether the actor may perform church-scoped actions
// for the given church. Admins always can; editors only for their own church.
func CanActForChurch(role UserRole, actorChurchID *uint, churchID uint) bool {
	if role.IsAdmin() {
		return true
	}
	return actorChurchID != nil && *actorChurchID == churchID
}
