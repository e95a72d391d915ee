package out

import "context"

type LastActiveStore interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, day string) error
}
