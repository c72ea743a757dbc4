package models

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceExcused AttendanceStatus = "Excused"
)

// Связь "участие пользователя в совещании". Пара (meeting, user)
// намеренно не уникальна — ограничение на уровне БД не накладываем.
type Attendance struct {
	ID uint `gorm:"primaryKey"`

	MeetingID uint
	UserID    uint

	Status AttendanceStatus `gorm:"type:varchar(20);not null"`

	Meeting Meeting
	User    User
}
