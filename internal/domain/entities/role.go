package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleUser         Role = "user"
	RoleProfessional Role = "pro"
)

// Permission representa uma permissão específica
type Permission string

const (
	// User permissions
	PermissionUserRead   Permission = "users.read"
	PermissionUserWrite  Permission = "users.write"
	PermissionUserDelete Permission = "users.delete"

	// Professional permissions
	PermissionProfessionalWrite Permission = "professionals.write"

	// Post permissions
	PermissionPostRead  Permission = "posts.read"
	PermissionPostWrite Permission = "posts.write"

	// Permissões de moderação: agir sobre recursos de outros usuários
	PermissionManageAny Permission = "any.manage"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserDelete,
		PermissionProfessionalWrite,
		PermissionPostRead,
		PermissionPostWrite,
		PermissionManageAny,
	},
	RoleProfessional: {
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserDelete,
		PermissionProfessionalWrite,
		PermissionPostRead,
		PermissionPostWrite,
	},
	RoleUser: {
		PermissionUserRead,
		PermissionUserWrite,
		PermissionUserDelete,
		PermissionPostRead,
	},
}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
