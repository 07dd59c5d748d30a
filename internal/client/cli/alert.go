package cli

import (
	"fmt"

	"github.com/integrasalud/affiliate-client/internal/client/services"
)

// alertMessage maps a login error to the text shown to the user.
func alertMessage(err error) string {
	switch services.Kind(err) {
	case services.KindValidation:
		return "Ingresá tu número de documento (hasta 8 dígitos) y tu contraseña."
	case services.KindNotFound:
		return "No encontramos un afiliado con ese número de documento."
	case services.KindInvalidCredentials:
		return "Contraseña incorrecta."
	case services.KindUnavailable:
		return "No se pudo conectar con el servidor. Intentá de nuevo más tarde."
	case services.KindStorage:
		return "No se pudo guardar la sesión en este dispositivo."
	case services.KindMalformedRecord:
		return "Los datos del afiliado están incompletos. Contactá a soporte."
	case services.KindInProgress:
		return "Ya hay un inicio de sesión en curso."
	default:
		return "Ocurrió un error inesperado."
	}
}

// alert prints msg and blocks until the user presses Enter.
func (a *App) alert(msg string) {
	fmt.Fprintf(a.out, "! %s\n(Enter para continuar)", msg)
	_, _ = a.reader.ReadString('\n')
	fmt.Fprintln(a.out)
}
