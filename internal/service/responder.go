package service

import (
	"log"

	"faqbot/internal/domain"
	"faqbot/internal/knowledge"
)

// IntentClassifier tenta derivar uma resposta de um texto livre.
// O booleano indica se alguma heurística reconheceu o texto.
type IntentClassifier interface {
	Classify(text string) (string, bool)
}

// Escalator encaminha ao administrador uma pergunta sem resposta.
type Escalator interface {
	Forward(q string)
}

// Responder resolve a resposta para uma mensagem do usuário:
// busca exata na base de conhecimento, depois o classificador de intenções
// e, por último, o escalonamento ao administrador.
type Responder struct {
	kb         *knowledge.Base
	classifier IntentClassifier
	escalator  Escalator
}

// NewResponder cria o resolvedor de respostas com suas dependências.
func NewResponder(kb *knowledge.Base, classifier IntentClassifier, escalator Escalator) *Responder {
	return &Responder{kb: kb, classifier: classifier, escalator: escalator}
}

// Respond sempre retorna uma resposta ao usuário, mesmo quando o
// escalonamento falha nos bastidores.
func (r *Responder) Respond(text string) string {
	if answer, ok := r.kb.Lookup(text); ok {
		return answer
	}

	if answer, ok := r.classifier.Classify(text); ok {
		return answer
	}

	log.Printf("Sem resposta para '%s', encaminhando ao administrador", text)

	// O placeholder é gravado antes da tentativa de notificação: perguntas
	// repetidas passam a cair na busca exata e não reenviam o e-mail.
	r.kb.Insert(text, domain.PlaceholderAnswer)
	r.escalator.Forward(text)

	return domain.ApologyAnswer
}
