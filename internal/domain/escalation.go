package domain

// Respostas fixas do bot.
const (
	// PlaceholderAnswer é gravada na base de conhecimento quando uma pergunta
	// é encaminhada ao administrador e ainda não tem resposta.
	PlaceholderAnswer = "Forwarded to admin's email. Waiting for response."

	// ApologyAnswer é devolvida ao usuário quando o bot não sabe responder.
	ApologyAnswer = "I don't have an answer for that, sorry."

	// ForwardErrorAnswer fica registrada no ledger quando o envio do e-mail falha.
	ForwardErrorAnswer = "Error forwarding to admin. Please try again."
)

// EscalationStatus indica o estado de uma pergunta encaminhada ao administrador.
type EscalationStatus int

const (
	// StatusPendingAdminReply: e-mail enviado, aguardando resposta humana.
	StatusPendingAdminReply EscalationStatus = iota
	// StatusForwardError: o envio da notificação falhou.
	StatusForwardError
)

// EscalationRecord representa uma pergunta encaminhada e ainda não resolvida.
type EscalationRecord struct {
	Question string
	Answer   string
	Status   EscalationStatus
}
