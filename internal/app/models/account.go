package models

import (
	"cobalt-screening-service/internal/pkg/constvars"
	"context"
)

// Account is the authenticated caller.
type Account struct {
	AccountID   string
	RoleID      string
	AccessToken string
}

func AccountFromContext(ctx context.Context) (*Account, bool) {
	account, ok := ctx.Value(constvars.CONTEXT_ACCOUNT_KEY).(*Account)
	return account, ok && account != nil
}

func ContextWithAccount(ctx context.Context, account *Account) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_ACCOUNT_KEY, account)
}
