package models

// LoginForm is the view state of the login screen. The zero value is an empty
// form with the password obscured.
type LoginForm struct {
	Identifier   string
	ShowPassword bool
}

// TogglePasswordVisibility flips between obscured and plain password input.
func (f *LoginForm) TogglePasswordVisibility() {
	f.ShowPassword = !f.ShowPassword
}

// PasswordObscured reports whether password input must not be echoed.
func (f *LoginForm) PasswordObscured() bool {
	return !f.ShowPassword
}
