package booking

import (
	"context"
	"strconv"
	"time"

	"pubhouse-be/internal/storage"
)

var bookingColumns = []string{
	"name", "phone", "email", "date", "time", "size", "comment",
	"created_at", "ip", "ua",
}

// Repository appends booking requests to the persistent log.
type Repository interface {
	Append(ctx context.Context, b *Booking) error
}

type csvRepository struct {
	log *storage.CSVLog
}

func NewRepository(path string) Repository {
	return &csvRepository{log: storage.NewCSVLog(path)}
}

func (repo *csvRepository) Append(_ context.Context, b *Booking) error {
	row := map[string]string{
		"name":       b.Name,
		"phone":      b.Phone,
		"email":      b.Email,
		"date":       b.Date,
		"time":       b.Time,
		"size":       strconv.Itoa(b.PartySize),
		"comment":    b.Comment,
		"created_at": b.CreatedAt.Format(time.RFC3339),
		"ip":         b.IP,
		"ua":         b.UserAgent,
	}
	return repo.log.Append(row, bookingColumns)
}
