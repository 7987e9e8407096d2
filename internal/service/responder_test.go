package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot/internal/admin"
	"faqbot/internal/domain"
	"faqbot/internal/knowledge"
	"faqbot/internal/nlp"
	"faqbot/internal/service"
)

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) Send(question string) error {
	f.calls++
	return f.err
}

func newResponder(notifier *fakeNotifier) (*service.Responder, *knowledge.Base, *admin.Ledger) {
	kb := knowledge.NewBase()
	ledger := admin.NewLedger(kb, notifier, nil)
	responder := service.NewResponder(kb, nlp.NewClassifier(), ledger)
	return responder, kb, ledger
}

func TestRespondExactMatch(t *testing.T) {
	responder, kb, _ := newResponder(&fakeNotifier{})

	kb.Insert("what is the baggage allowance?", "23kg per passenger")

	assert.Equal(t, "23kg per passenger", responder.Respond("what is the baggage allowance?"))
}

// Entrada da base de conhecimento tem precedência sobre o classificador.
func TestRespondKnowledgeBaseBeforeClassifier(t *testing.T) {
	responder, kb, _ := newResponder(&fakeNotifier{})

	kb.Insert("hello", "custom greeting from the admin")

	assert.Equal(t, "custom greeting from the admin", responder.Respond("hello"))
}

func TestRespondClassifierHit(t *testing.T) {
	notifier := &fakeNotifier{}
	responder, kb, _ := newResponder(notifier)

	assert.Equal(t, "Hello there! How can I assist you today?", responder.Respond("hi"))
	assert.Equal(t, 0, notifier.calls)

	// Respostas do classificador não são cacheadas na base de conhecimento.
	_, ok := kb.Lookup("hi")
	assert.False(t, ok)
}

func TestRespondEscalatesUnknownQuestion(t *testing.T) {
	notifier := &fakeNotifier{}
	responder, kb, ledger := newResponder(notifier)

	answer := responder.Respond("what time is the next flight")

	assert.Equal(t, domain.ApologyAnswer, answer)
	assert.Equal(t, 1, notifier.calls)

	placeholder, ok := kb.Lookup("what time is the next flight")
	require.True(t, ok)
	assert.Equal(t, domain.PlaceholderAnswer, placeholder)

	status, ok := ledger.Status("what time is the next flight")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPendingAdminReply, status)
}

// Perguntar N vezes a mesma pergunta desconhecida gera uma única notificação:
// a partir da segunda vez a busca exata encontra o placeholder.
func TestRespondEscalationIsIdempotent(t *testing.T) {
	notifier := &fakeNotifier{}
	responder, _, _ := newResponder(notifier)

	first := responder.Respond("what time is the next flight")
	assert.Equal(t, domain.ApologyAnswer, first)

	for i := 0; i < 5; i++ {
		answer := responder.Respond("what time is the next flight")
		assert.Equal(t, domain.PlaceholderAnswer, answer)
	}

	assert.Equal(t, 1, notifier.calls)
}

// Falha de notificação não muda a resposta vista pelo usuário.
func TestRespondNotificationFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("timeout")}
	responder, kb, ledger := newResponder(notifier)

	answer := responder.Respond("what time is the next flight")

	assert.Equal(t, domain.ApologyAnswer, answer)

	status, ok := ledger.Status("what time is the next flight")
	require.True(t, ok)
	assert.Equal(t, domain.StatusForwardError, status)

	// O placeholder é gravado antes da tentativa de envio.
	placeholder, ok := kb.Lookup("what time is the next flight")
	require.True(t, ok)
	assert.Equal(t, domain.PlaceholderAnswer, placeholder)
}

func TestRespondResolutionRoundTrip(t *testing.T) {
	responder, _, ledger := newResponder(&fakeNotifier{})

	responder.Respond("q")
	ledger.ProvideAnswer("q", "real answer")

	assert.Equal(t, "real answer", responder.Respond("q"))

	ledger.Resolve("q")
	assert.Empty(t, ledger.Pending())

	// A entrada da base de conhecimento sobrevive à resolução.
	assert.Equal(t, "real answer", responder.Respond("q"))
}
