package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/hairloom/salon-booking/internal/domain/booking"
	"github.com/hairloom/salon-booking/internal/mailer"
	"github.com/hairloom/salon-booking/internal/models"
)

// Runs every evening and mails customers about their next-day confirmed
// bookings. Best-effort like every other email in the system.
const schedule = "0 18 * * *"

type Scheduler struct {
	db   *gorm.DB
	mail *mailer.Dispatcher
	cron *cron.Cron
}

func New(db *gorm.DB, mail *mailer.Dispatcher) *Scheduler {
	return &Scheduler{db: db, mail: mail}
}

func (s *Scheduler) Start() {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(schedule, s.sendUpcomingReminders); err != nil {
		log.Printf("reminder: failed to schedule: %v", err)
		return
	}
	s.cron.Start()
	log.Println("Reminder scheduler started")
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) sendUpcomingReminders() {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var bookings []models.Booking
	err := s.db.
		Preload("Customer").
		Preload("Service").
		Preload("Stylist").
		Where(
			"status = ? AND start_time >= ? AND start_time < ?",
			string(domain.StatusConfirmed),
			dayStart,
			dayEnd,
		).
		Find(&bookings).Error
	if err != nil {
		log.Printf("reminder: failed to list bookings: %v", err)
		return
	}

	for _, b := range bookings {
		email := b.CustomerEmail
		name := b.CustomerName
		if b.Customer != nil {
			email = b.Customer.Email
			name = b.Customer.FullName
		}
		if email == "" {
			continue
		}

		s.mail.Dispatch(mailer.Message{
			To:      email,
			Subject: "Your salon appointment tomorrow",
			Body: fmt.Sprintf(
				"Hi %s,\n\nA reminder for your %s with %s tomorrow at %s.\n\nSee you then!\n",
				name,
				b.Service.Name,
				b.Stylist.DisplayName,
				b.StartTime.Format("15:04"),
			),
		})
	}

	log.Printf("reminder: dispatched %d booking reminders", len(bookings))
}
