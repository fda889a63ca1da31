package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// KST is the fixed UTC+9 civil zone every hour/weekday rule is anchored to,
// independent of the server locale.
var KST = time.FixedZone("KST", 9*60*60)

// DefaultAreaID is the area reported when a status request names none.
const DefaultAreaID = "jeonju-hanok"

// ErrAreaNotFound is returned by catalog lookups for an unknown identifier.
var ErrAreaNotFound = errors.New("area not found")

var areaIDPattern = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

// Area is a tourist location in the catalog. Immutable once loaded.
type Area struct {
	ID             string  `json:"id" db:"id" validate:"required,areaid"`
	Name           string  `json:"name" db:"name" validate:"required"`
	NameKR         string  `json:"name_kr" db:"name_kr" validate:"required"`
	Region         string  `json:"region" db:"region"`
	Category       string  `json:"category" db:"category"`
	BasePopularity float64 `json:"base_popularity" db:"base_popularity" validate:"gte=0,lte=1"`
	Emoji          string  `json:"emoji" db:"emoji"`
}

// AreaListResponse is the body of the area listing endpoint
type AreaListResponse struct {
	Total int    `json:"total"`
	Areas []Area `json:"areas"`
}

// UnknownAreaResponse is reported in-band when a status request names an
// area the catalog does not hold.
type UnknownAreaResponse struct {
	Error          string   `json:"error"`
	AvailableAreas []string `json:"available_areas"`
}

// NewValidator returns a validator with the areaid tag registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("areaid", func(fl validator.FieldLevel) bool {
		return areaIDPattern.MatchString(fl.Field().String())
	})
	return v
}
