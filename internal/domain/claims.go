package domain

import "github.com/golang-jwt/jwt/v5"

// Role é o perfil de acesso emitido no token
type Role int

const (
	RoleAdmin      Role = 1
	RoleSupervisor Role = 2 // gestor de contas: aciona sincronizações, não altera cotação
	RoleClient     Role = 3 // somente leitura do dashboard
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleSupervisor:
		return "supervisor"
	case RoleClient:
		return "client"
	default:
		return "unknown"
	}
}

// Claims são as informações do usuário emitidas pelo serviço de login
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID Role
	jwt.RegisteredClaims
}
