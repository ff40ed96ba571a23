package services

import (
	"errors"
	"fmt"

	"boxful-client/internal/domain"
	"boxful-client/internal/wizard"
)

// NoticeKind is the category of a user-facing notice.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota + 1
	NoticeValidation
	NoticeNetwork
	NoticeGeneral
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeValidation:
		return "validation"
	case NoticeNetwork:
		return "network"
	case NoticeGeneral:
		return "general"
	}
	return "unknown"
}

// Notice is what the user sees after an operation: a title and a message.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

func (n Notice) String() string {
	if n.Title == "" {
		return n.Message
	}
	return fmt.Sprintf("%s\n%s", n.Title, n.Message)
}

// userMessenger is implemented by transport errors that carry a message fit
// for display.
type userMessenger interface {
	UserMessage() string
}

func userMessage(err error) (string, bool) {
	var um userMessenger
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage(), true
	}
	return "", false
}

// OrderCreatedNotice announces a created order.
func OrderCreatedNotice(o domain.Order) Notice {
	n := Notice{Kind: NoticeSuccess, Title: "¡Orden creada exitosamente!"}
	if o.ID != "" {
		n.Message = fmt.Sprintf("Tu orden #ID: %s ha sido creada y está siendo procesada. Recibirás una notificación cuando un conductor la tome.", o.ID)
	} else {
		n.Message = "Tu orden ha sido creada correctamente."
	}
	return n
}

// OrderFailureNotice maps a failed submission to a notice.
func OrderFailureNotice(err error) Notice {
	var se *wizard.StepError
	switch {
	case errors.As(err, &se):
		return Notice{Kind: NoticeValidation, Title: se.Title(), Message: se.Message()}
	case errors.Is(err, ErrSubmitInFlight):
		return Notice{Kind: NoticeGeneral, Title: "Envío en curso", Message: "La orden ya se está enviando. Espera la respuesta."}
	case errors.Is(err, ErrNotAuthenticated):
		return sessionRequiredNotice()
	}

	msg, ok := userMessage(err)
	if !ok {
		msg = "No se pudo crear la orden. Verifica tu conexión a internet e inténtalo de nuevo."
	}
	return Notice{Kind: NoticeNetwork, Title: "Error al crear orden", Message: msg}
}

// LoginNotice maps the outcome of a login.
func LoginNotice(err error) Notice {
	if err == nil {
		return Notice{Kind: NoticeSuccess, Title: "¡Inicio de sesión exitoso!", Message: "Has iniciado sesión correctamente"}
	}
	return authFailureNotice(err, "Error al iniciar sesión", "Error al iniciar sesión. Verifica tus credenciales.")
}

// RegisterNotice maps the outcome of a registration.
func RegisterNotice(err error) Notice {
	if err == nil {
		return Notice{Kind: NoticeSuccess, Title: "¡Registro exitoso!", Message: "Tu cuenta ha sido creada correctamente"}
	}
	return authFailureNotice(err, "Error al registrarse", "Error al registrar usuario. Inténtalo de nuevo.")
}

func authFailureNotice(err error, title, fallback string) Notice {
	var pe *PreflightError
	if errors.As(err, &pe) {
		return Notice{Kind: NoticeValidation, Title: title, Message: pe.Message}
	}
	if msg, ok := userMessage(err); ok {
		return Notice{Kind: NoticeNetwork, Title: title, Message: msg}
	}
	return Notice{Kind: NoticeGeneral, Title: title, Message: fallback}
}

// HistoryFailureNotice maps a failed history load or filter change.
func HistoryFailureNotice(err error) Notice {
	var fe FilterError
	if errors.As(err, &fe) {
		return Notice{Kind: NoticeValidation, Title: "Rango de fechas inválido", Message: fe.Errors[0].Message}
	}
	if errors.Is(err, ErrNotAuthenticated) {
		return sessionRequiredNotice()
	}
	msg, ok := userMessage(err)
	if !ok {
		msg = "No se pudieron cargar las órdenes. Inténtalo de nuevo."
	}
	return Notice{Kind: NoticeNetwork, Title: "Error al cargar envíos", Message: msg}
}

func sessionRequiredNotice() Notice {
	return Notice{Kind: NoticeGeneral, Title: "Sesión requerida", Message: "Debes iniciar sesión para continuar."}
}
