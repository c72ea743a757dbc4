package database

import (
	"fmt"
	"time"

	"mdo-portal/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed наполняет пустую базу демонстрационными данными отделения.
// Повторный запуск ничего не делает: если пользователи уже есть — выходим.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding demo data")

	// у всех демо-аккаунтов один пароль, хэшируем один раз
	hash, err := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := []models.User{
		{Username: "doctor1", PasswordHash: string(hash), FullName: "Dr. Smith", Role: models.RoleDoctor},
		{Username: "doctor2", PasswordHash: string(hash), FullName: "Dr. Jones", Role: models.RoleDoctor},
		{Username: "doctor3", PasswordHash: string(hash), FullName: "Dr. Williams", Role: models.RoleDoctor},
		{Username: "doctor4", PasswordHash: string(hash), FullName: "Dr. Brown", Role: models.RoleDoctor},
		{Username: "doctor5", PasswordHash: string(hash), FullName: "Dr. Davis", Role: models.RoleDoctor},
		{Username: "head", PasswordHash: string(hash), FullName: "Dr. Head", Role: models.RoleHead},
		{Username: "admin", PasswordHash: string(hash), FullName: "Admin User", Role: models.RoleAdmin},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	var docs []models.User
	if err := db.Where("role = ?", models.RoleDoctor).Order("id asc").Find(&docs).Error; err != nil {
		return fmt.Errorf("load doctors: %w", err)
	}

	today := dateOnly(time.Now())

	meetingTypes := []models.MeetingType{
		models.MeetingDepartment,
		models.MeetingCME,
		models.MeetingHospitalWide,
	}
	meetings := make([]models.Meeting, 0, 15)
	for i := 0; i < 15; i++ {
		meetings = append(meetings, models.Meeting{
			Title: fmt.Sprintf("Meeting %d", i+1),
			Date:  today.AddDate(0, 0, -i*2),
			Type:  meetingTypes[i%3],
		})
	}
	if err := db.Create(&meetings).Error; err != nil {
		return fmt.Errorf("seed meetings: %w", err)
	}

	// посещаемость: каждый врач на каждом совещании, статусы по кругу
	statuses := []models.AttendanceStatus{
		models.AttendancePresent,
		models.AttendanceAbsent,
		models.AttendanceExcused,
	}
	attendance := make([]models.Attendance, 0, len(meetings)*len(docs))
	for mi, m := range meetings {
		for di, d := range docs {
			attendance = append(attendance, models.Attendance{
				MeetingID: m.ID,
				UserID:    d.ID,
				Status:    statuses[(mi+di)%3],
			})
		}
	}
	if err := db.Create(&attendance).Error; err != nil {
		return fmt.Errorf("seed attendance: %w", err)
	}

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	slots := make([]models.ClinicSlot, 0, 10)
	for i := 0; i < 10; i++ {
		slots = append(slots, models.ClinicSlot{
			DayOfWeek: days[i%5],
			StartTime: fmt.Sprintf("%d:00", 8+i%4),
			EndTime:   fmt.Sprintf("%d:00", 12+i%4),
			UserID:    docs[i%5].ID,
		})
	}
	if err := db.Create(&slots).Error; err != nil {
		return fmt.Errorf("seed clinic slots: %w", err)
	}

	procedures := []string{"Appendectomy", "Cholecystectomy", "Hernia Repair", "Consultation", "Teaching Rounds"}
	entries := make([]models.ServiceEntry, 0, 8)
	for i := 0; i < 8; i++ {
		entries = append(entries, models.ServiceEntry{
			Date:          today.AddDate(0, 0, -i),
			ProcedureName: procedures[i%5],
			Notes:         fmt.Sprintf("Routine procedure %d", i+1),
			UserID:        docs[i%5].ID,
		})
	}
	if err := db.Create(&entries).Error; err != nil {
		return fmt.Errorf("seed service entries: %w", err)
	}

	research := []models.ResearchItem{
		{Title: "New Techniques in Surgery", Type: models.ResearchPublication, Status: models.ResearchPublished},
		{Title: "Annual Medical Conference", Type: models.ResearchPresentation, Status: models.ResearchSubmitted},
		{Title: "Cardiology Trial Phase 1", Type: models.ResearchTrial, Status: models.ResearchApproved},
		{Title: "Pediatric Care Review", Type: models.ResearchPublication, Status: models.ResearchSubmitted},
		{Title: "Grand Rounds Presentation", Type: models.ResearchPresentation, Status: models.ResearchPublished},
	}
	for i := range research {
		research[i].UserID = docs[i%5].ID
	}
	if err := db.Create(&research).Error; err != nil {
		return fmt.Errorf("seed research items: %w", err)
	}

	log.Info().
		Int("users", len(users)).
		Int("meetings", len(meetings)).
		Int("attendance", len(attendance)).
		Int("clinic_slots", len(slots)).
		Int("service_entries", len(entries)).
		Int("research_items", len(research)).
		Msg("seeding complete")

	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
