// Package cli provides the interactive affiliate client.
//
// It wires configuration, the users directory, the identity provider and the
// local session store into a small REPL with two screens:
//
//   - Login: enter the document number and password, toggle password
//     visibility, open the signup page.
//   - Home: show the signed-in profile, log out.
//
// Failed logins are shown as a blocking alert. The REPL is started with
// App.Run(ctx), which blocks until the user exits.
package cli
