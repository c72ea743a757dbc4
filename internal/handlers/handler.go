package handlers

import "gorm.io/gorm"

// Handler держит зависимости обработчиков. БД передаётся явно при сборке
// роутера — глобального состояния у пакета нет.
type Handler struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{db: db}
}
