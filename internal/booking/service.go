package booking

import (
	"context"
	"strings"
	"time"
)

type Service interface {
	Create(ctx context.Context, b Booking) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates and records a booking request. Name, phone, date, time
// and a party of at least one are required.
func (s *service) Create(ctx context.Context, b Booking) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Phone = strings.TrimSpace(b.Phone)
	b.Email = strings.TrimSpace(b.Email)
	b.Date = strings.TrimSpace(b.Date)
	b.Time = strings.TrimSpace(b.Time)
	b.Comment = strings.TrimSpace(b.Comment)

	switch {
	case b.Name == "":
		return ErrNameRequired
	case b.Phone == "":
		return ErrPhoneRequired
	case b.Date == "":
		return ErrDateRequired
	case b.Time == "":
		return ErrTimeRequired
	case b.PartySize < 1:
		return ErrPartyTooSmall
	}

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return s.repo.Append(ctx, &b)
}
