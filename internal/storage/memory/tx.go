package memory

import "context"

type txKey struct{}

// withTx marks the context so nested repository calls reuse the lock the
// enclosing transaction already holds instead of deadlocking on it.
func withTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, struct{}{})
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(struct{})
	return ok
}
