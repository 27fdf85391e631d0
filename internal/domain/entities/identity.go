package entities

import "time"

// Identity é o chamador autenticado, extraído de um token válido
type Identity struct {
	UserID    string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin verifica se o chamador é admin
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanModify aplica a regra dono-ou-admin sobre um recurso do usuário ownerUserID
func (i Identity) CanModify(ownerUserID string) bool {
	if i.Role.HasPermission(PermissionManageAny) {
		return true
	}
	return ownerUserID != "" && i.UserID == ownerUserID
}
