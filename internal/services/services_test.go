package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ClemRoy/epicEvents/internal/db"
	"github.com/ClemRoy/epicEvents/internal/models"
)

// testDB opens a fresh in-memory database per test. The shared-cache name is
// derived from the test so parallel tests never collide.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(conn))
	require.NoError(t, db.Seed(conn))
	return conn
}

func createCommercial(t *testing.T, conn *gorm.DB, email string) *models.User {
	t.Helper()
	var group models.Group
	require.NoError(t, conn.Where("name = ?", models.GroupCommercial).First(&group).Error)
	user := models.User{
		Email:        email,
		FirstName:    "Sales",
		LastName:     "Person",
		PasswordHash: "x",
		IsActive:     true,
		Groups:       []models.Group{group},
	}
	require.NoError(t, conn.Create(&user).Error)
	return &user
}

func createSupport(t *testing.T, conn *gorm.DB, email string) *models.User {
	t.Helper()
	var group models.Group
	require.NoError(t, conn.Where("name = ?", models.GroupSupport).First(&group).Error)
	user := models.User{
		Email:        email,
		FirstName:    "Support",
		LastName:     "Person",
		PasswordHash: "x",
		IsActive:     true,
		Groups:       []models.Group{group},
	}
	require.NoError(t, conn.Create(&user).Error)
	return &user
}

func createClient(t *testing.T, conn *gorm.DB, salesContactID uint, email string) *models.Client {
	t.Helper()
	client := models.Client{
		FirstName:      "Jane",
		LastName:       "Doe",
		CompanyName:    "Acme",
		Email:          email,
		Status:         models.ClientStatusPotential,
		SalesContactID: salesContactID,
	}
	require.NoError(t, conn.Create(&client).Error)
	return &client
}

func createContract(t *testing.T, conn *gorm.DB, clientID, salesContactID uint, status models.ContractStatus) *models.Contract {
	t.Helper()
	contract := models.Contract{
		ClientID:       clientID,
		SalesContactID: salesContactID,
		Status:         status,
		AmountDue:      1500,
		PaymentDueDate: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, conn.Create(&contract).Error)
	return &contract
}
