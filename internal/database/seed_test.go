package database_test

import (
	"fmt"
	"testing"

	"mdo-portal/internal/database"
	"mdo-portal/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

// openTestDB поднимает чистую in-memory базу со схемой портала.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, database.Seed(db))

	var users, meetings, attendance, slots, entries, research int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Meeting{}).Count(&meetings)
	db.Model(&models.Attendance{}).Count(&attendance)
	db.Model(&models.ClinicSlot{}).Count(&slots)
	db.Model(&models.ServiceEntry{}).Count(&entries)
	db.Model(&models.ResearchItem{}).Count(&research)

	assert.EqualValues(t, 7, users)
	assert.EqualValues(t, 15, meetings)
	assert.EqualValues(t, 75, attendance, "каждый врач на каждом совещании")
	assert.EqualValues(t, 10, slots)
	assert.EqualValues(t, 8, entries)
	assert.EqualValues(t, 5, research)

	// демо-пароль принимается у каждого аккаунта
	var doc models.User
	require.NoError(t, db.Where("username = ?", "doctor1").First(&doc).Error)
	assert.Equal(t, "Dr. Smith", doc.FullName)
	assert.Equal(t, models.RoleDoctor, doc.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte("pass")))

	var head models.User
	require.NoError(t, db.Where("username = ?", "head").First(&head).Error)
	assert.Equal(t, models.RoleHead, head.Role)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, database.Seed(db))
	require.NoError(t, database.Seed(db))

	var users, meetings, attendance int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Meeting{}).Count(&meetings)
	db.Model(&models.Attendance{}).Count(&attendance)

	assert.EqualValues(t, 7, users)
	assert.EqualValues(t, 15, meetings)
	assert.EqualValues(t, 75, attendance)
}

func TestSeedDoctorOwnership(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, database.Seed(db))

	// записи о процедурах раскиданы только по врачам
	var entries []models.ServiceEntry
	require.NoError(t, db.Preload("User").Find(&entries).Error)
	for _, e := range entries {
		assert.Equal(t, models.RoleDoctor, e.User.Role)
		assert.NotEmpty(t, e.ProcedureName)
	}

	var slots []models.ClinicSlot
	require.NoError(t, db.Preload("User").Find(&slots).Error)
	for _, s := range slots {
		assert.Equal(t, models.RoleDoctor, s.User.Role)
	}
}
