package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// InitDB abre a conexão com o banco de dados PostgreSQL e garante que a
// tabela de FAQ exista.
func InitDB(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão com o banco de dados: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao conectar com o banco de dados (ping): %w", err)
	}

	log.Println("Conexão com o banco de dados PostgreSQL estabelecida com sucesso!")

	if err := createFaqTableIfNotExists(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// createFaqTableIfNotExists cria a tabela para armazenar as perguntas e
// respostas, se ela não existir.
func createFaqTableIfNotExists(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS faq_entries (
        question TEXT PRIMARY KEY,
        answer TEXT NOT NULL,
        updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
    );`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("erro ao criar tabela faq_entries: %w", err)
	}
	log.Println("Tabela 'faq_entries' verificada/criada com sucesso.")
	return nil
}
