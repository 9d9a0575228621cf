package db

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/logger"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

// Seed carrega dades de mostra per a entorns de desenvolupament. És
// idempotent: si ja hi ha usuaris no fa res.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456789"), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("seed: no s'ha pogut generar el hash", zap.Error(err))
		return
	}

	worker := models.User{
		DNI:          "20572143T",
		Name:         "Luis",
		Surname:      "Perez",
		Nick:         "luisp",
		Telf:         "123456789",
		Email:        "test@example.com",
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}
	db.Create(&worker)

	client := models.Client{
		DNI:     "50572123E",
		Name:    "Yeray",
		Surname: "Zafra",
		Telf:    "600749384",
		Email:   "luisruiz@gmail.com",
	}
	db.Create(&client)

	services := []models.Service{
		{Name: "Tall de cabell", Description: "Tall i pentinat", Price: 15.00, Estimation: 30},
		{Name: "Tint", Description: "Coloració completa", Price: 40.00, Estimation: 90},
		{Name: "Afaitat", Description: "Afaitat clàssic", Price: 10.00, Estimation: 20},
	}
	for i := range services {
		db.Create(&services[i])
	}

	start := time.Now().Add(-8 * time.Hour)
	end := time.Now().Add(-30 * time.Minute)
	shift := models.Shift{
		StartTime: start,
		EndTime:   &end,
		Date:      start.Format("2006-01-02"),
	}
	db.Create(&shift)

	reservations := []models.Reservation{
		{
			Date: "2025-01-01", Hour: "10:00",
			WorkerDNI: worker.DNI, ClientDNI: client.DNI,
			ServiceID: services[0].ID, ShiftID: &shift.ID,
			Status: "completed",
		},
		{
			Date: "2025-01-02", Hour: "11:00",
			WorkerDNI: worker.DNI, ClientDNI: client.DNI,
			ServiceID: services[1].ID, ShiftID: &shift.ID,
			Status: "completed",
		},
	}
	for i := range reservations {
		db.Create(&reservations[i])
	}

	logger.SLog.Info("Dades de mostra carregades")
}
