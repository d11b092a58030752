package notification

import (
	"fmt"

	"ministryshare/internal/shared/i18n"
)

// Subject and body text per notification kind. Spanish variants mirror the
// wording of the English ones.

func subjectRequestCreated(l i18n.Locale, e RequestEvent) string {
	return l.Pick(
		fmt.Sprintf("New loan request for %q", e.ResourceTitle),
		fmt.Sprintf("Nueva solicitud de préstamo de %q", e.ResourceTitle),
	)
}

func bodyRequestCreated(l i18n.Locale, e RequestEvent, messageHTML string) string {
	intro := l.Pick(
		fmt.Sprintf("<p>%s has requested to borrow <strong>%s</strong>, to be returned by %s.</p>",
			e.RequesterChurch, e.ResourceTitle, e.ReturnByDate),
		fmt.Sprintf("<p>%s ha solicitado tomar prestado <strong>%s</strong>, a devolver antes del %s.</p>",
			e.RequesterChurch, e.ResourceTitle, e.ReturnByDate),
	)
	if messageHTML != "" {
		intro += l.Pick("<p>Message from the requester:</p>", "<p>Mensaje del solicitante:</p>") + messageHTML
	}
	intro += l.Pick(
		"<p>Sign in to respond to this request.</p>",
		"<p>Inicie sesión para responder a esta solicitud.</p>",
	)
	return intro
}

func subjectRequestDecision(l i18n.Locale, e RequestEvent, approved bool) string {
	if approved {
		return l.Pick(
			fmt.Sprintf("Your request for %q was approved", e.ResourceTitle),
			fmt.Sprintf("Su solicitud de %q fue aprobada", e.ResourceTitle),
		)
	}
	return l.Pick(
		fmt.Sprintf("Your request for %q was denied", e.ResourceTitle),
		fmt.Sprintf("Su solicitud de %q fue denegada", e.ResourceTitle),
	)
}

func bodyRequestDecision(l i18n.Locale, e RequestEvent, approved bool, responseHTML string) string {
	var body string
	if approved {
		body = l.Pick(
			fmt.Sprintf("<p>%s approved your request to borrow <strong>%s</strong>. Please return it by %s.</p>",
				e.OwnerChurch, e.ResourceTitle, e.ReturnByDate),
			fmt.Sprintf("<p>%s aprobó su solicitud de <strong>%s</strong>. Devuélvalo antes del %s.</p>",
				e.OwnerChurch, e.ResourceTitle, e.ReturnByDate),
		)
	} else {
		body = l.Pick(
			fmt.Sprintf("<p>%s denied your request to borrow <strong>%s</strong>.</p>", e.OwnerChurch, e.ResourceTitle),
			fmt.Sprintf("<p>%s denegó su solicitud de <strong>%s</strong>.</p>", e.OwnerChurch, e.ResourceTitle),
		)
	}
	if responseHTML != "" {
		body += l.Pick("<p>Response:</p>", "<p>Respuesta:</p>") + responseHTML
	}
	return body
}

func subjectRequestCancelled(l i18n.Locale, e RequestEvent) string {
	return l.Pick(
		fmt.Sprintf("Loan request for %q was cancelled", e.ResourceTitle),
		fmt.Sprintf("La solicitud de %q fue cancelada", e.ResourceTitle),
	)
}

func bodyRequestCancelled(l i18n.Locale, e RequestEvent) string {
	return l.Pick(
		fmt.Sprintf("<p>%s cancelled their request to borrow <strong>%s</strong>. The resource remains available.</p>",
			e.RequesterChurch, e.ResourceTitle),
		fmt.Sprintf("<p>%s canceló su solicitud de <strong>%s</strong>. El recurso sigue disponible.</p>",
			e.RequesterChurch, e.ResourceTitle),
	)
}

func subjectLoan(l i18n.Locale, e LoanEvent, kind string) string {
	switch kind {
	case "returned":
		return l.Pick(
			fmt.Sprintf("%q has been returned", e.ResourceTitle),
			fmt.Sprintf("%q ha sido devuelto", e.ResourceTitle),
		)
	case "overdue":
		return l.Pick(
			fmt.Sprintf("Loan of %q is overdue", e.ResourceTitle),
			fmt.Sprintf("El préstamo de %q está vencido", e.ResourceTitle),
		)
	default:
		return l.Pick(
			fmt.Sprintf("%q has been marked lost", e.ResourceTitle),
			fmt.Sprintf("%q ha sido marcado como perdido", e.ResourceTitle),
		)
	}
}

func bodyLoan(l i18n.Locale, e LoanEvent, kind string) string {
	switch kind {
	case "returned":
		return l.Pick(
			fmt.Sprintf("<p><strong>%s</strong> was returned by %s and is available again.</p>", e.ResourceTitle, e.BorrowingChurch),
			fmt.Sprintf("<p><strong>%s</strong> fue devuelto por %s y está disponible de nuevo.</p>", e.ResourceTitle, e.BorrowingChurch),
		)
	case "overdue":
		return l.Pick(
			fmt.Sprintf("<p>The loan of <strong>%s</strong> to %s was due on %s and is now overdue.</p>",
				e.ResourceTitle, e.BorrowingChurch, e.DueDate),
			fmt.Sprintf("<p>El préstamo de <strong>%s</strong> a %s venció el %s.</p>",
				e.ResourceTitle, e.BorrowingChurch, e.DueDate),
		)
	default:
		return l.Pick(
			fmt.Sprintf("<p><strong>%s</strong>, on loan to %s, has been marked lost and removed from circulation.</p>",
				e.ResourceTitle, e.BorrowingChurch),
			fmt.Sprintf("<p><strong>%s</strong>, prestado a %s, ha sido marcado como perdido y retirado de circulación.</p>",
				e.ResourceTitle, e.BorrowingChurch),
		)
	}
}

func subjectChurchDecision(l i18n.Locale, e ChurchEvent, approved bool) string {
	if approved {
		return l.Pick(
			fmt.Sprintf("%s has been approved", e.ChurchName),
			fmt.Sprintf("%s ha sido aprobada", e.ChurchName),
		)
	}
	return l.Pick(
		fmt.Sprintf("Registration of %s was not approved", e.ChurchName),
		fmt.Sprintf("El registro de %s no fue aprobado", e.ChurchName),
	)
}

func bodyChurchDecision(l i18n.Locale, e ChurchEvent, approved bool) string {
	if approved {
		return l.Pick(
			fmt.Sprintf("<p><strong>%s</strong> is now part of the district resource sharing network. Members can register accounts and list resources.</p>", e.ChurchName),
			fmt.Sprintf("<p><strong>%s</strong> ahora forma parte de la red de recursos compartidos del distrito. Los miembros pueden registrar cuentas y publicar recursos.</p>", e.ChurchName),
		)
	}
	body := l.Pick(
		fmt.Sprintf("<p>The registration of <strong>%s</strong> was not approved.</p>", e.ChurchName),
		fmt.Sprintf("<p>El registro de <strong>%s</strong> no fue aprobado.</p>", e.ChurchName),
	)
	if e.RejectionReason != "" {
		body += l.Pick(
			fmt.Sprintf("<p>Reason: %s</p>", e.RejectionReason),
			fmt.Sprintf("<p>Motivo: %s</p>", e.RejectionReason),
		)
	}
	return body
}

func subjectVerification(l i18n.Locale) string {
	return l.Pick("Verify your email address", "Verifique su dirección de correo")
}

func bodyVerification(l i18n.Locale, verifyURL string) string {
	return l.Pick(
		fmt.Sprintf(`<p>Welcome! Confirm your email address to activate your account:</p><p><a href="%s">%s</a></p><p>The link expires in 24 hours.</p>`, verifyURL, verifyURL),
		fmt.Sprintf(`<p>¡Bienvenido! Confirme su dirección de correo para activar su cuenta:</p><p><a href="%s">%s</a></p><p>El enlace caduca en 24 horas.</p>`, verifyURL, verifyURL),
	)
}
