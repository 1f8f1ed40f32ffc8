package service

// AuthorizationGuard restricts privileged operations to a single authority identity
type AuthorizationGuard struct {
	authority string
}

// NewAuthorizationGuard fixes the authority identity for the lifetime of the guard
func NewAuthorizationGuard(authority string) *AuthorizationGuard {
	return &AuthorizationGuard{authority: authority}
}

// IsAuthority checks if caller is the authority. An unset authority matches nobody.
func (g *AuthorizationGuard) IsAuthority(caller string) bool {
	return g.authority != "" && caller == g.authority
}

// Authorize returns ErrUnauthorized unless caller is the authority
func (g *AuthorizationGuard) Authorize(caller string) error {
	if !g.IsAuthority(caller) {
		return ErrUnauthorized
	}
	return nil
}

// Authority returns the configured authority identity
func (g *AuthorizationGuard) Authority() string {
	return g.authority
}
