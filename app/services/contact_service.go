package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tommy251/Atlas2.0/app/models"
	"github.com/tommy251/Atlas2.0/app/repositories"
)

// ContactService records messages from the contact form.
type ContactService struct {
	inbox repositories.ContactRepository
}

func NewContactService(inbox repositories.ContactRepository) *ContactService {
	return &ContactService{inbox: inbox}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message string) error {
	msg := models.ContactMessage{
		Name:       name,
		Email:      email,
		Message:    message,
		ReceivedAt: time.Now().UTC(),
	}
	if err := s.inbox.Append(ctx, msg); err != nil {
		return fmt.Errorf("contact: %w", err)
	}
	return nil
}
