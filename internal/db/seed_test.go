package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gymstack/gym-manager/internal/config"
	dbpkg "github.com/gymstack/gym-manager/internal/db"
	"github.com/gymstack/gym-manager/internal/models"
	"github.com/gymstack/gym-manager/internal/testutil"
)

func seedConfig() *config.Config {
	return &config.Config{AdminUser: "admin", AdminPass: "sekret"}
}

func TestSeed_FreshDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, dbpkg.Seed(db, seedConfig()))

	var plans, rooms int64
	require.NoError(t, db.Model(&models.MembershipPlan{}).Count(&plans).Error)
	require.NoError(t, db.Model(&models.Room{}).Count(&rooms).Error)
	assert.EqualValues(t, 4, plans)
	assert.EqualValues(t, 5, rooms)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("sekret")))
}

func TestSeed_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := seedConfig()

	require.NoError(t, dbpkg.Seed(db, cfg))
	require.NoError(t, dbpkg.Seed(db, cfg))

	var plans, rooms, users int64
	require.NoError(t, db.Model(&models.MembershipPlan{}).Count(&plans).Error)
	require.NoError(t, db.Model(&models.Room{}).Count(&rooms).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 4, plans)
	assert.EqualValues(t, 5, rooms)
	assert.EqualValues(t, 1, users)
}

func TestSeed_KeepsExistingRows(t *testing.T) {
	db := testutil.NewTestDB(t)
	cfg := seedConfig()
	require.NoError(t, dbpkg.Seed(db, cfg))

	// Operators rename plans in production; a restart must not undo that.
	require.NoError(t, db.Model(&models.MembershipPlan{}).
		Where("plan_name = ?", "Basic Plan").
		Update("plan_name", "Starter Plan").Error)

	require.NoError(t, dbpkg.Seed(db, cfg))

	var renamed int64
	require.NoError(t, db.Model(&models.MembershipPlan{}).
		Where("plan_name = ?", "Starter Plan").
		Count(&renamed).Error)
	assert.EqualValues(t, 1, renamed)
}
