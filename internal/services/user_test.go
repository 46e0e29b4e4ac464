package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ClemRoy/epicEvents/internal/auth"
	"github.com/ClemRoy/epicEvents/internal/models"
	"github.com/ClemRoy/epicEvents/internal/services"
)

func TestUserProvision(t *testing.T) {
	conn := testDB(t)
	svc := services.NewUserService(conn)

	user := models.User{
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "Hire",
		IsActive:  true,
	}
	err := svc.Provision(context.Background(), &user, "s3cret", []string{models.GroupCommercial})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.True(t, auth.CheckPassword(user.PasswordHash, "s3cret"))

	var stored models.User
	require.NoError(t, conn.Preload("Groups").First(&stored, user.ID).Error)
	require.True(t, stored.InGroup(models.GroupCommercial))
	require.False(t, stored.InGroup(models.GroupSupport))
}

func TestUserProvision_UnknownGroupRejected(t *testing.T) {
	conn := testDB(t)
	svc := services.NewUserService(conn)

	user := models.User{
		Email:     "new@example.com",
		FirstName: "New",
		LastName:  "Hire",
		IsActive:  true,
	}
	err := svc.Provision(context.Background(), &user, "s3cret", []string{"management"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, conn.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}
