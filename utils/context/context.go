package context

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRoles(ctx context.Context) []string {
	roles, _ := ctx.Value(constant.RolesKey).([]string)
	return roles
}

func GetTokenID(ctx context.Context) (string, bool) {
	jti, ok := ctx.Value(constant.TokenIDKey).(string)
	return jti, ok && jti != ""
}

// GetCaller returns the authenticated caller stored by the auth middleware.
func GetCaller(ctx context.Context) (model.Caller, bool) {
	id, ok := GetUserID(ctx)
	if !ok {
		return model.Caller{}, false
	}
	return model.Caller{UserID: id, Roles: GetRoles(ctx)}, true
}

func WithCaller(ctx context.Context, session *model.Session, roles []string) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, session.UserID)
	ctx = context.WithValue(ctx, constant.TokenIDKey, session.TokenID)
	return context.WithValue(ctx, constant.RolesKey, roles)
}
