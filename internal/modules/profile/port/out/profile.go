package out

import (
	"context"

	"questlog/internal/modules/profile/domain"
)

type ProfileStore interface {
	Load(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
}
