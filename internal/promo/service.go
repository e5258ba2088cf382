package promo

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Service is the promo engine: code evaluation for the cart plus the admin
// catalog operations.
type Service interface {
	Evaluate(ctx context.Context, code string, subtotal float64) Application
	IncrementUsage(ctx context.Context, code string) error

	List(ctx context.Context) ([]Code, error)
	Upsert(ctx context.Context, c Code) error
	Delete(ctx context.Context, code string) error
	ResetUsage(ctx context.Context, code string) error
}

type service struct {
	repo Repository

	// Serializes read-modify-write cycles on the shared promo document.
	// Lost usage-counter updates are a correctness defect.
	mu sync.Mutex
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Evaluate looks the code up case-insensitively and runs the validation
// chain against the given subtotal. It never mutates the store; callers
// evict non-retained codes from their session state.
func (s *service) Evaluate(ctx context.Context, code string, subtotal float64) Application {
	code = Normalize(code)
	if code == "" {
		return Application{Status: StatusNone}
	}

	codes, err := s.repo.Load(ctx)
	if err != nil {
		codes = nil
	}

	var found *Code
	for i := range codes {
		if codes[i].Code == code {
			found = &codes[i]
			break
		}
	}
	if found == nil {
		return Application{Code: code, Status: StatusInvalid, Message: "promo code not found"}
	}

	app := Application{Code: code, Promo: found}
	app.Status = StatusOf(*found, time.Now(), subtotal)
	switch app.Status {
	case StatusInactive:
		app.Message = "promo code is no longer active"
	case StatusExpired:
		app.Message = "promo code has expired"
	case StatusLimit:
		app.Message = "promo code usage limit reached"
	case StatusPending:
		app.Message = fmt.Sprintf("promo code applies from a subtotal of %.2f", found.MinSubtotal)
	case StatusOK:
		app.Discount = DiscountFor(*found, subtotal)
		app.Message = "promo code applied"
	}
	return app
}

// IncrementUsage bumps the usage counter of one code by exactly one and
// persists the catalog.
func (s *service) IncrementUsage(ctx context.Context, code string) error {
	code = Normalize(code)
	if code == "" {
		return ErrCodeEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	for i := range codes {
		if codes[i].Code == code {
			codes[i].Used++
			return s.repo.Save(ctx, codes)
		}
	}
	return ErrCodeNotFound
}

func (s *service) List(ctx context.Context) ([]Code, error) {
	return s.repo.Load(ctx)
}

// Upsert replaces the code with the same identifier or appends a new one.
func (s *service) Upsert(ctx context.Context, c Code) error {
	c.Code = Normalize(c.Code)
	if c.Code == "" {
		return ErrCodeEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	for i := range codes {
		if codes[i].Code == c.Code {
			codes[i] = c
			return s.repo.Save(ctx, codes)
		}
	}
	return s.repo.Save(ctx, append(codes, c))
}

func (s *service) Delete(ctx context.Context, code string) error {
	code = Normalize(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	for i := range codes {
		if codes[i].Code == code {
			return s.repo.Save(ctx, append(codes[:i], codes[i+1:]...))
		}
	}
	return ErrCodeNotFound
}

// ResetUsage zeroes the usage counter. The only path that ever decrements.
func (s *service) ResetUsage(ctx context.Context, code string) error {
	code = Normalize(code)

	s.mu.Lock()
	defer s.mu.Unlock()

	codes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}
	for i := range codes {
		if codes[i].Code == code {
			codes[i].Used = 0
			return s.repo.Save(ctx, codes)
		}
	}
	return ErrCodeNotFound
}
