package services

import (
	"testing"

	"github.com/kamasanicharan/BoldScholars/internal/models"
)

const testSuperAdminEmail = "boldscholars@gmail.com"

func rolePtr(r models.UserRole) *models.UserRole { return &r }

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name      string
		identity  *models.Identity
		persisted *models.UserRole
		want      models.UserRole
	}{
		{
			name:     "no identity is guest",
			identity: nil,
			want:     models.RoleGuest,
		},
		{
			name:      "no identity is guest even with persisted admin",
			identity:  nil,
			persisted: rolePtr(models.RoleAdmin),
			want:      models.RoleGuest,
		},
		{
			name:     "super admin email wins without persisted record",
			identity: &models.Identity{UID: "u-root", Email: testSuperAdminEmail},
			want:     models.RoleAdmin,
		},
		{
			name:      "super admin email wins over persisted user role",
			identity:  &models.Identity{UID: "u-root", Email: testSuperAdminEmail},
			persisted: rolePtr(models.RoleUser),
			want:      models.RoleAdmin,
		},
		{
			name:      "persisted admin flag grants admin",
			identity:  &models.Identity{UID: "u-1", Email: "student1@x.com"},
			persisted: rolePtr(models.RoleAdmin),
			want:      models.RoleAdmin,
		},
		{
			name:     "signed in without record is user",
			identity: &models.Identity{UID: "u-1", Email: "student1@x.com"},
			want:     models.RoleUser,
		},
		{
			name:      "signed in with user record is user",
			identity:  &models.Identity{UID: "u-1", Email: "student1@x.com"},
			persisted: rolePtr(models.RoleUser),
			want:      models.RoleUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRole(testSuperAdminEmail, tt.identity, tt.persisted)
			if got != tt.want {
				t.Errorf("ResolveRole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveRoleIsPure(t *testing.T) {
	identity := &models.Identity{UID: "u-1", Email: "student1@x.com"}
	persisted := rolePtr(models.RoleAdmin)

	first := ResolveRole(testSuperAdminEmail, identity, persisted)
	second := ResolveRole(testSuperAdminEmail, identity, persisted)

	if first != second {
		t.Errorf("same inputs resolved differently: %v then %v", first, second)
	}
	if *persisted != models.RoleAdmin {
		t.Errorf("ResolveRole mutated its input: %v", *persisted)
	}
}
