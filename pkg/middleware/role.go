package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

// RequireRoles libera a rota apenas para os perfis informados.
// Depende do AuthMiddleware ter colocado as claims no contexto.
func RequireRoles(allowed ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok || claims == nil {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowed, claims.UserRoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id":   claims.UserID,
					"user_role": claims.UserRoleID.String(),
					"path":      r.URL.Path,
				}).Warn("acesso negado para o perfil")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Seu perfil não permite esta operação", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly protege a atualização manual da cotação
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// AdminOrSupervisor protege o controle das sincronizações agendadas
func AdminOrSupervisor() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleSupervisor)
}

// AllRoles libera a leitura de métricas e cotação para qualquer perfil autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RequireRoles(domain.RoleAdmin, domain.RoleSupervisor, domain.RoleClient)
}
