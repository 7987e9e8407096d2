package knowledge

import (
	"database/sql"
	"fmt"
	"log"
)

// Repository define a interface para persistir e recuperar entradas de FAQ.
type Repository interface {
	SaveEntry(question, answer string) error
	LoadAll() (map[string]string, error)
}

// PostgresRepository é uma implementação do Repository usando PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository cria uma nova instância do repositório PostgreSQL.
func NewPostgresRepository(db *sql.DB) Repository {
	return &PostgresRepository{db: db}
}

// SaveEntry grava (ou sobrescreve) uma entrada de FAQ no PostgreSQL.
func (r *PostgresRepository) SaveEntry(question, answer string) error {
	query := `
    INSERT INTO faq_entries (question, answer, updated_at)
    VALUES ($1, $2, CURRENT_TIMESTAMP)
    ON CONFLICT (question) DO UPDATE SET answer = EXCLUDED.answer, updated_at = CURRENT_TIMESTAMP`

	_, err := r.db.Exec(query, question, answer)
	if err != nil {
		return fmt.Errorf("erro ao salvar entrada de FAQ no banco de dados: %w", err)
	}

	log.Printf("FAQ_DB: Entrada salva: '%s'", question)
	return nil
}

// LoadAll recupera todas as entradas de FAQ do PostgreSQL. Usado para
// semear a base em memória na inicialização.
func (r *PostgresRepository) LoadAll() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT question, answer FROM faq_entries`)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar entradas de FAQ no banco de dados: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var question, answer string
		if err := rows.Scan(&question, &answer); err != nil {
			log.Printf("Erro ao escanear linha de FAQ: %v", err)
			continue // Pula entradas malformadas
		}
		entries[question] = answer
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração das linhas de FAQ: %w", err)
	}

	return entries, nil
}
