package cli

import (
	"context"
	"fmt"

	"github.com/integrasalud/affiliate-client/internal/client/models"
	"github.com/integrasalud/affiliate-client/internal/common"
)

// Login reads the form and submits it. The document number behaves like a
// numeric keypad capped at common.IdentifierMaxLen digits, and an empty answer
// keeps the value typed on the previous attempt. The password is echoed only
// when the form says so.
//
// Failures are shown as an alert and returned; on success the service has
// already navigated to the Home screen.
func (a *App) Login(ctx context.Context) error {
	prompt := "N° de documento"
	if a.form.Identifier != "" {
		prompt += fmt.Sprintf(" [%s]", a.form.Identifier)
	}

	raw, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if raw != "" {
		a.form.Identifier = models.SanitizeIdentifierInput(raw)
	}

	secret, err := a.readSecret()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	creds := models.Credentials{Identifier: a.form.Identifier, Secret: secret}
	if _, err := a.authService.Submit(ctx, creds); err != nil {
		a.alert(alertMessage(err))
		return err
	}
	return nil
}

func (a *App) readSecret() ([]byte, error) {
	if a.form.PasswordObscured() {
		return getPassword(a.out)
	}
	s, err := getSimpleText(a.reader, "Contraseña", a.out)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// TogglePassword flips password echo for the next login.
func (a *App) TogglePassword(ctx context.Context) error {
	a.form.TogglePasswordVisibility()
	if a.form.PasswordObscured() {
		fmt.Fprintln(a.out, "Contraseña oculta")
	} else {
		fmt.Fprintln(a.out, "Contraseña visible")
	}
	return nil
}

// Signup opens the membership page. When no browser can be launched the URL
// is printed instead.
func (a *App) Signup(ctx context.Context) error {
	if err := a.opener.Open(a.config.SignupURL); err != nil {
		a.logger.Warn(ctx, "browser not opened", "error", err)
		fmt.Fprintf(a.out, "Asociate en %s\n", a.config.SignupURL)
		return err
	}
	return nil
}

// Status prints the current screen and the session found at startup.
func (a *App) Status(ctx context.Context) error {
	if a.loggedIn() {
		fmt.Fprintf(a.out, "Pantalla: %s (%s)\n", ScreenHome, a.user.Email)
	} else {
		visibility := "oculta"
		if !a.form.PasswordObscured() {
			visibility = "visible"
		}
		fmt.Fprintf(a.out, "Pantalla: %s, contraseña %s\n", ScreenLogin, visibility)
	}

	if a.lastSession == nil {
		fmt.Fprintln(a.out, "Sin sesión guardada")
		return nil
	}

	fmt.Fprintf(a.out, "Sesión guardada: %s", a.lastSession.User.Email)
	if !a.lastSession.SavedAt.IsZero() {
		fmt.Fprintf(a.out, " (%s)", a.lastSession.SavedAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out)
	return nil
}
