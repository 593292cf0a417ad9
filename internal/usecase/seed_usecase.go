package usecase

import "context"

// SeedResult reports the outcome of seeding
type SeedResult struct {
	Message  string `json:"message"`
	Products *int64 `json:"products,omitempty"`
}

// SeedUsecase populates an empty store from the fixture
type SeedUsecase interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
