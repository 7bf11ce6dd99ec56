package logging

import (
	"context"
)

func WrapCtx(ctx context.Context, key, val string) context.Context {
	return WrapCtxWith(ctx, map[string]string{key: val})
}

// WrapCtxWith copies the logging context carried by ctx and adds every pair
// of kvs to the copy.
func WrapCtxWith(ctx context.Context, kvs map[string]string) context.Context {
	mapCtx := make(map[string]string)
	if original, ok := ctx.Value(CtxValLoggingContext).(map[string]string); ok {
		for k, v := range original {
			mapCtx[k] = v
		}
	}
	for k, v := range kvs {
		mapCtx[k] = v
	}
	return context.WithValue(ctx, CtxValLoggingContext, mapCtx)
}
