package knowledge

import "sync"

// Base é o mapeamento pergunta→resposta mantido em memória.
// A comparação de perguntas é por igualdade exata de string.
type Base struct {
	mu      sync.RWMutex // Mutex para proteger o acesso concorrente ao mapa
	entries map[string]string
}

// NewBase cria uma base de conhecimento vazia.
func NewBase() *Base {
	return &Base{entries: make(map[string]string)}
}

// Lookup recupera a resposta para uma pergunta. Retorna a resposta e um
// booleano indicando se foi encontrada.
func (b *Base) Lookup(q string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	a, ok := b.entries[q]
	return a, ok
}

// Insert grava uma resposta para uma pergunta, sobrescrevendo qualquer
// resposta anterior.
func (b *Base) Insert(q, a string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[q] = a
}

// Len retorna o número de entradas na base.
func (b *Base) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
