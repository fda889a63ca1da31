package service

import (
	"github.com/smartcity/tourdifficulty/internal/domain"
)

// AreaRepository is re-exported from domain for convenience
type AreaRepository = domain.AreaRepository
