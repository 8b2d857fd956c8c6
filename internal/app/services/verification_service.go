package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/oms-tech/reviews/internal/pkg/apperrors"
	"github.com/oms-tech/reviews/internal/pkg/verification"
)

// CodeSender asks the verification provider to send a one-time code
type CodeSender interface {
	Send(ctx context.Context, username string) (verification.SendOutcome, error)
}

// VerificationService handles sending verification codes
type VerificationService struct {
	sender CodeSender
}

// NewVerificationService creates a new verification service instance
func NewVerificationService(sender CodeSender) *VerificationService {
	return &VerificationService{sender: sender}
}

// SendCode sends a code to username and maps the provider outcome to an error
func (s *VerificationService) SendCode(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return apperrors.ErrMissingIdentifier
	}

	outcome, err := s.sender.Send(ctx, username)
	if err != nil {
		return fmt.Errorf("error sending verification code: %w", err)
	}

	switch outcome {
	case verification.SendSuccess:
		return nil
	case verification.SendInvalidIdentifier:
		return apperrors.ErrInvalidIdentifier
	default:
		return apperrors.ErrRateLimited
	}
}
