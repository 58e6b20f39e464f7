package ports

import "context"

// AuthService implements signup and login. No session or token is
// issued on login; the client resends the username on every call.
type AuthService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
}
