package services

import "github.com/kamasanicharan/BoldScholars/internal/models"

// ResolveRole maps an identity and its persisted role flag to the effective
// role. The precedence chain is strict and order-sensitive:
//
//  1. no identity                      -> guest
//  2. super-admin email                -> admin (always wins)
//  3. persisted record says admin      -> admin
//  4. otherwise                        -> user
//
// A persisted admin flag survives omission; only an explicit demotion could
// revoke it, and no demotion path exists. The function is pure; the auth
// service performs the write-back after every resolution.
func ResolveRole(superAdminEmail string, identity *models.Identity, persisted *models.UserRole) models.UserRole {
	if identity == nil {
		return models.RoleGuest
	}
	if identity.Email == superAdminEmail {
		return models.RoleAdmin
	}
	if persisted != nil && *persisted == models.RoleAdmin {
		return models.RoleAdmin
	}
	return models.RoleUser
}
