package auth

import "chirpynosh_backend/internal/models"

// Capability is a single granted action. Access checks are set-intersection
// tests against a role's capability set, so adding a role never requires
// touching call sites.
type Capability string

const (
	CapListingWrite     Capability = "listings:write"
	CapListingDelete    Capability = "listings:delete"
	CapPartnerManage    Capability = "partners:manage"
	CapRecipientManage  Capability = "recipients:manage"
	CapRecipientList    Capability = "recipients:list"
	CapClaimUpdate      Capability = "claims:update"
	CapExpirationWrite  Capability = "expirations:write"
	CapNotificationRead Capability = "notifications:read"
)

// capabilities maps each role to its granted set. The admin role is handled
// separately in HasCapability and satisfies every check.
var capabilities = map[models.UserRole]map[Capability]bool{
	models.UserRolePartner: {
		CapListingWrite:     true,
		CapClaimUpdate:      true,
		CapExpirationWrite:  true,
		CapNotificationRead: true,
	},
	models.UserRoleRecipient: {
		CapClaimUpdate:      true,
		CapNotificationRead: true,
	},
	models.UserRolePublic: {
		CapClaimUpdate:      true,
		CapNotificationRead: true,
	},
}

// HasCapability reports whether the role grants the capability.
func HasCapability(role models.UserRole, capability Capability) bool {
	if role == models.UserRoleAdmin {
		return true
	}
	granted, exists := capabilities[role]
	if !exists {
		return false
	}
	return granted[capability]
}

// RequireAny reports whether the role grants at least one of the
// capabilities. An empty capability list denies.
func RequireAny(role models.UserRole, caps ...Capability) bool {
	for _, capability := range caps {
		if HasCapability(role, capability) {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims != nil && claims.Role == models.UserRoleAdmin
}
