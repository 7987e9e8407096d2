package admin

import (
	"log"
	"sync"

	"faqbot/internal/domain"
	"faqbot/internal/knowledge"
)

// Notifier entrega uma notificação sobre uma pergunta ao administrador.
// Retorna erro quando a entrega falha.
type Notifier interface {
	Send(question string) error
}

// Ledger rastreia as perguntas encaminhadas ao administrador e ainda não
// resolvidas. É o único componente com estado além da base de conhecimento.
type Ledger struct {
	mu       sync.RWMutex // Mutex para proteger o acesso concorrente aos registros
	records  map[string]domain.EscalationRecord
	order    []string // ordem de inserção, para listagem determinística
	kb       *knowledge.Base
	notifier Notifier
	repo     knowledge.Repository // opcional; nil desabilita a persistência
}

// NewLedger cria o ledger de escalonamento. repo pode ser nil quando não há
// banco de dados configurado.
func NewLedger(kb *knowledge.Base, notifier Notifier, repo knowledge.Repository) *Ledger {
	return &Ledger{
		records:  make(map[string]domain.EscalationRecord),
		kb:       kb,
		notifier: notifier,
		repo:     repo,
	}
}

// Forward encaminha uma pergunta ao administrador, no máximo uma vez por
// pergunta distinta. Falha de notificação nunca é propagada: fica registrada
// como status ForwardError para inspeção do operador.
func (l *Ledger) Forward(q string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.records[q]; ok {
		return
	}

	if err := l.notifier.Send(q); err != nil {
		log.Printf("Erro ao encaminhar consulta '%s': %v", q, err)
		l.track(q, domain.EscalationRecord{
			Question: q,
			Answer:   domain.ForwardErrorAnswer,
			Status:   domain.StatusForwardError,
		})
		return
	}

	log.Printf("Consulta encaminhada com sucesso: %s", q)
	l.track(q, domain.EscalationRecord{
		Question: q,
		Answer:   domain.PlaceholderAnswer,
		Status:   domain.StatusPendingAdminReply,
	})
}

// ProvideAnswer registra a resposta do administrador para uma pergunta,
// gravando-a na base de conhecimento e no ledger. O registro só é removido
// por uma chamada explícita a Resolve.
func (l *Ledger) ProvideAnswer(q, a string) {
	l.kb.Insert(q, a)

	if l.repo != nil {
		if err := l.repo.SaveEntry(q, a); err != nil {
			log.Printf("Erro ao persistir resposta do admin para '%s': %v", q, err)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[q]
	if !ok {
		rec = domain.EscalationRecord{Question: q, Status: domain.StatusPendingAdminReply}
	}
	rec.Answer = a
	l.track(q, rec)
}

// Pending retorna as perguntas rastreadas, em ordem de inserção.
func (l *Ledger) Pending() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	pending := make([]string, len(l.order))
	copy(pending, l.order)
	return pending
}

// HasPending informa se existe alguma pergunta aguardando resolução.
func (l *Ledger) HasPending() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records) > 0
}

// AdminAnswer retorna a resposta rastreada para uma pergunta, ou a resposta
// padrão se a pergunta não estiver rastreada.
func (l *Ledger) AdminAnswer(q string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if rec, ok := l.records[q]; ok {
		return rec.Answer
	}
	return domain.ApologyAnswer
}

// Status retorna o status de escalonamento de uma pergunta rastreada.
func (l *Ledger) Status(q string) (domain.EscalationStatus, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rec, ok := l.records[q]
	return rec.Status, ok
}

// Resolve remove o registro de uma pergunta, se existir.
func (l *Ledger) Resolve(q string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.records[q]; !ok {
		return
	}
	delete(l.records, q)
	for i, item := range l.order {
		if item == q {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// track insere ou atualiza um registro, mantendo a ordem de inserção.
// Deve ser chamado com l.mu já adquirido.
func (l *Ledger) track(q string, rec domain.EscalationRecord) {
	if _, ok := l.records[q]; !ok {
		l.order = append(l.order, q)
	}
	l.records[q] = rec
}
