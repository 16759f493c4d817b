package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gefm2002/juancito-mercado-boutique/config"
	"github.com/gefm2002/juancito-mercado-boutique/internal/auth"
	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
)

func TestCheckDefaultAdminSeedsLowercaseEmail(t *testing.T) {
	t.Setenv("BOUTIQUE_ADMIN_EMAIL", "Dueño@Juancito.LOCAL")
	t.Setenv("BOUTIQUE_ADMIN_PASSWORD", "secreto")

	a := NewTestApplication(config.DefaultAppConfig(), newTestDB(t))
	a.checkDefaultAdmin()

	var admin domain.Admin
	require.NoError(t, a.DB().First(&admin).Error)
	assert.Equal(t, "dueño@juancito.local", admin.Email)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, "secreto"))
	assert.True(t, admin.IsActive)
}

func TestCheckDefaultAdminSkipsWhenAdminsExist(t *testing.T) {
	a := NewTestApplication(config.DefaultAppConfig(), newTestDB(t))

	require.NoError(t, a.DB().Create(&domain.Admin{
		ID:       1,
		Email:    "existente@juancito.local",
		IsActive: true,
	}).Error)

	a.checkDefaultAdmin()

	var count int64
	require.NoError(t, a.DB().Model(&domain.Admin{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
