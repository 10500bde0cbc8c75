// Package di holds the explicit wiring helpers used by the composition roots
// under cmd/*.
//
// There is no container and no reflection-based injection. A Service[T]
// wraps a constructed value plus a record of what was injected into it;
// Injecting builds an Injector that binds one dependency under a key.
// Wiring mistakes (nil values, duplicate keys, missing keys) come back as
// *Error values that match serrors.ErrInvalidArgument.
//
// Registry[V] is a small keyed lookup used when the implementation of a
// capability is picked at startup (for example, report generators by format).
//
//	app := di.Init(func() *App { return &App{} })
//	_, err := app.WithAll(
//		di.Injecting(KeyAuth, auth, func(a *App, d *Auth) { a.auth = d }),
//	)
package di
