package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"
)

//go:generate go run go.uber.org/mock/mockgen -source=mail.go -destination=mock/mail_mock.go -package=mock github.com/bookmyfield/backend/pkg/mail Service

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	TemplatePath string
}

// WelcomeData is the payload for the registration email.
type WelcomeData struct {
	Name string
	Role string
}

// BookingConfirmationData is the payload for the booking confirmation email.
type BookingConfirmationData struct {
	CustomerName string
	FieldName    string
	BookingDate  string
	TimeSlot     string
	Price        string
}

// Service sends transactional email. Callers treat it as fire and forget, no
// delivery guarantee.
type Service interface {
	SendWelcomeEmail(to string, data WelcomeData) error
	SendBookingConfirmationEmail(to string, data BookingConfirmationData) error
}

type service struct {
	config                      Config
	welcomeTemplate             *template.Template
	bookingConfirmationTemplate *template.Template
}

func New(config Config) Service {
	templatePath := config.TemplatePath
	if templatePath == "" {
		templatePath = "template"
	}

	welcomeTemplate, err := template.ParseFiles(filepath.Join(templatePath, "welcome.html"))
	if err != nil {
		panic(fmt.Sprintf("failed to parse welcome template: %v", err))
	}

	bookingConfirmationTemplate, err := template.ParseFiles(filepath.Join(templatePath, "booking_confirmation.html"))
	if err != nil {
		panic(fmt.Sprintf("failed to parse booking confirmation template: %v", err))
	}

	return &service{
		config:                      config,
		welcomeTemplate:             welcomeTemplate,
		bookingConfirmationTemplate: bookingConfirmationTemplate,
	}
}

func (s *service) SendWelcomeEmail(to string, data WelcomeData) error {
	subject := "Welcome to BookMyField"

	var body bytes.Buffer
	if err := s.welcomeTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute welcome template: %w", err)
	}

	return s.sendEmail(to, subject, body.String())
}

func (s *service) SendBookingConfirmationEmail(to string, data BookingConfirmationData) error {
	subject := "Booking Confirmed"

	var body bytes.Buffer
	if err := s.bookingConfirmationTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute booking confirmation template: %w", err)
	}

	return s.sendEmail(to, subject, body.String())
}

func (s *service) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	return d.DialAndSend(m)
}
