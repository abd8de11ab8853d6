package services

import (
	"strings"

	"frydays/libs"
	"frydays/models"
)

type ContactService struct {
	mailer libs.Mailer
}

func NewContactService(mailer libs.Mailer) *ContactService {
	return &ContactService{mailer: mailer}
}

func (s *ContactService) Send(req models.ContactRequest) error {
	return s.mailer.SendContactEmail(libs.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
	})
}
