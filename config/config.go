package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	AdminEmail     string
	DatabaseUrl    string
}

// Load carrega as variaveis de ambiente do arquivo .env
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env nao encontrado, usando variaveis do ambiente")
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Fatal("variavel de ambiente SMTP_HOST nao encontrada")
	}

	sender := os.Getenv("SENDER_EMAIL")
	if sender == "" {
		log.Fatal("variavel de ambiente SENDER_EMAIL nao encontrada")
	}

	password := os.Getenv("SENDER_PASSWORD")
	if password == "" {
		log.Fatal("variavel de ambiente SENDER_PASSWORD nao encontrada")
	}

	admin := os.Getenv("ADMIN_EMAIL")
	if admin == "" {
		log.Fatal("variavel de ambiente ADMIN_EMAIL nao encontrada")
	}

	smtpPort := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			log.Fatalf("variavel de ambiente SMTP_PORT invalida: %v", err)
		}
		smtpPort = n
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := Config{
		Port:           port,
		SMTPHost:       host,
		SMTPPort:       smtpPort,
		SenderEmail:    sender,
		SenderPassword: password,
		AdminEmail:     admin,
		DatabaseUrl:    os.Getenv("DATABASE_URL"),
	}

	return cfg
}
