package repository

import "context"

type ViewCounterRepository interface {
	// count = count + 1 してから現在値を返す
	Increment(ctx context.Context) (int64, error)
	Get(ctx context.Context) (int64, error)
}
