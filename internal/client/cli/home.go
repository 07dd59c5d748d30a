package cli

import (
	"context"
	"fmt"

	"github.com/integrasalud/affiliate-client/internal/client/services"
)

// Profile prints the signed-in affiliate. Avatar object keys are turned into
// temporary links; if that fails the raw reference is shown.
func (a *App) Profile(ctx context.Context) error {
	u := a.user
	fmt.Fprintf(a.out, "Email:     %s\n", u.Email)
	fmt.Fprintf(a.out, "Documento: %s\n", u.Identifier)
	fmt.Fprintf(a.out, "Cuenta:    %s\n", u.Account)
	fmt.Fprintf(a.out, "Rol:       %s\n", u.Role)

	if u.AvatarURL == "" {
		return nil
	}

	link, err := a.avatars.Resolve(ctx, u.AvatarURL)
	if err != nil {
		a.logger.Warn(ctx, "avatar link not available", "error", err)
		link = u.AvatarURL
	}
	fmt.Fprintf(a.out, "Avatar:    %s\n", link)
	return nil
}

// Logout drops the stored session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "kind", services.Kind(err).String(), "error", err)
		a.alert(alertMessage(err))
		return err
	}
	a.user = nil
	a.lastSession = nil
	a.screen = ScreenLogin
	fmt.Fprintln(a.out, "Sesión cerrada")
	return nil
}
