package database

import (
	"fmt"
	"time"

	"mdo-portal/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open подключается к Postgres с повторными попытками и прогоняет миграции.
// Хэндл возвращаем явно, глобальной переменной пакета нет — дальше его
// передают в роутер и обработчики.
func Open(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Info().Int("attempt", i).Int("max", maxAttempts).Msg("connecting to database")

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Info().Msg("connected to database")
			break
		}

		log.Warn().Err(err).Msg("database connection failed")
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate создаёт таблицы всех моделей портала.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Meeting{},
		&models.Attendance{},
		&models.ClinicSlot{},
		&models.ServiceEntry{},
		&models.ResearchItem{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
