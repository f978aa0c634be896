package users_enums

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleOwner   UserRole = "owner"
	UserRoleManager UserRole = "manager"
	UserRoleMember  UserRole = "member"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleOwner, UserRoleManager, UserRoleMember:
		return true
	default:
		return false
	}
}
