package main

import (
	"log"
	"net/http"

	"faqbot/config"
	"faqbot/internal/admin"
	"faqbot/internal/database"
	"faqbot/internal/handler"
	"faqbot/internal/knowledge"
	"faqbot/internal/nlp"
	"faqbot/internal/service"
	"faqbot/pkg/mailer"
)

func main() {
	cfg := config.Load()

	kb := knowledge.NewBase()

	// Banco de dados opcional: quando DATABASE_URL está definida, a base em
	// memória é semeada com as entradas persistidas.
	var repo knowledge.Repository
	if cfg.DatabaseUrl != "" {
		db, err := database.InitDB(cfg.DatabaseUrl)
		if err != nil {
			log.Fatalf("Erro ao inicializar o banco de dados: %v", err)
		}
		defer db.Close()

		repo = knowledge.NewPostgresRepository(db)
		entries, err := repo.LoadAll()
		if err != nil {
			log.Fatalf("Erro ao carregar entradas de FAQ: %v", err)
		}
		for q, a := range entries {
			kb.Insert(q, a)
		}
		log.Printf("%d entradas de FAQ carregadas do banco de dados", len(entries))
	}

	ledger := admin.NewLedger(kb, mailer.New(cfg), repo)
	responder := service.NewResponder(kb, nlp.NewClassifier(), ledger)

	adminHandler := handler.NewAdminHandler(ledger)

	http.Handle("/chat", handler.NewChatHandler(responder))
	http.HandleFunc("/admin/queries", adminHandler.Pending)
	http.HandleFunc("/admin/answer", adminHandler.Answer)
	http.HandleFunc("/admin/resolve", adminHandler.Resolve)

	log.Printf("Servidor iniciado na porta %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}
