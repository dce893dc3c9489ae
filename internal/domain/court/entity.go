package court

import (
	"strings"
	"time"
	"unicode/utf8"

	"padel-club/internal/pkg/errs"
)

var (
	ErrInvalidNumber        = errs.Mark(errs.New("court number must be positive"), errs.ErrValidation)
	ErrInvalidCategory      = errs.Mark(errs.New("court type must be indoor or outdoor"), errs.ErrValidation)
	ErrDescriptionTooLong   = errs.Mark(errs.New("court description is too long (max 255 characters)"), errs.ErrValidation)
	ErrCourtInactive        = errs.Mark(errs.New("court is not active"), errs.ErrValidation)
	ErrDuplicateCourtNumber = errs.Mark(errs.New("court number already in use"), errs.ErrConflict)
)

const MaxDescriptionLength = 255

// Court is a bookable padel court. Deactivation is a soft delete so that the
// booking history keeps pointing at a real row.
type Court struct {
	id          int64
	number      int
	category    Category
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCourt(number int, category Category, description string) (*Court, error) {
	c := &Court{active: true}
	if err := c.apply(number, category, description); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCourt(id int64, number int, category Category, description string, active bool, createdAt, updatedAt time.Time) *Court {
	return &Court{
		id:          id,
		number:      number,
		category:    category,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the editable attributes after validating them.
func (c *Court) Update(number int, category Category, description string, active bool) error {
	if err := c.apply(number, category, description); err != nil {
		return err
	}
	c.active = active
	return nil
}

func (c *Court) Deactivate() { c.active = false }

// EnsureBookable rejects new bookings on deactivated courts.
func (c *Court) EnsureBookable() error {
	if !c.active {
		return ErrCourtInactive
	}
	return nil
}

func (c *Court) apply(number int, category Category, description string) error {
	if number <= 0 {
		return ErrInvalidNumber
	}
	if !category.IsValid() {
		return ErrInvalidCategory
	}
	description = strings.TrimSpace(description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	c.number = number
	c.category = category
	c.description = description
	return nil
}

func (c *Court) ID() int64            { return c.id }
func (c *Court) Number() int          { return c.number }
func (c *Court) Category() Category   { return c.category }
func (c *Court) Description() string  { return c.description }
func (c *Court) IsActive() bool       { return c.active }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
func (c *Court) UpdatedAt() time.Time { return c.updatedAt }
