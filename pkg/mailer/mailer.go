package mailer

import (
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"faqbot/config"
)

// sendTimeout limita o handshake SMTP completo (conexão, STARTTLS,
// autenticação e envio). Estouro de tempo conta como falha de envio.
const sendTimeout = 10 * time.Second

// SMTPMailer entrega notificações de novas perguntas na caixa de entrada do
// administrador via SMTP com STARTTLS.
type SMTPMailer struct {
	cfg config.Config
}

// New cria o notificador SMTP a partir da configuração do processo.
func New(cfg config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send envia um e-mail ao administrador descrevendo a pergunta recebida.
func (m *SMTPMailer) Send(question string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.SenderEmail); err != nil {
		return fmt.Errorf("erro ao definir remetente: %w", err)
	}
	if err := msg.To(m.cfg.AdminEmail); err != nil {
		return fmt.Errorf("erro ao definir destinatário: %w", err)
	}
	msg.Subject("New Query: " + question)
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("The bot received a new query:\n\n%s\n\nPlease respond to the user.", question))

	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.SenderEmail),
		mail.WithPassword(m.cfg.SenderPassword),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente SMTP: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("erro ao enviar e-mail para o administrador: %w", err)
	}
	return nil
}
