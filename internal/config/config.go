package config

import (
	domainerrors "github.com/Tomas-vilte/MateBot/internal/domain/errors"
	"github.com/Tomas-vilte/MateBot/internal/domain/models"
)

// Config es la configuración a nivel aplicación del bot. La configuración
// por repositorio (labels, proyecto, rama base) se lee aparte, por evento,
// desde el propio repositorio.
type Config struct {
	// Addr es la dirección de escucha del servidor HTTP (ej: ":8080").
	Addr string
	// GithubToken autentica las llamadas REST y GraphQL.
	GithubToken string
	// WebhookSecret valida la firma HMAC de cada entrega.
	WebhookSecret string
	// Language selecciona el idioma de los mensajes ("en", "es").
	Language string
	// BotUser es el login con el que el bot se reconoce a sí mismo.
	BotUser string
	// SkipExistingBranch trata una rama ya existente como una corrida
	// duplicada en lugar de propagar el error.
	SkipExistingBranch bool
}

const (
	defaultAddr    = ":8080"
	defaultLang    = "en"
	defaultBotUser = "matebot[bot]"

	// botUserType es el tipo de cuenta que la API reporta para apps.
	botUserType = "Bot"
)

// NewConfig completa los campos vacíos con los defaults.
func NewConfig(addr, token, secret, lang, botUser string) *Config {
	if addr == "" {
		addr = defaultAddr
	}
	if lang == "" {
		lang = defaultLang
	}
	if botUser == "" {
		botUser = defaultBotUser
	}
	return &Config{
		Addr:          addr,
		GithubToken:   token,
		WebhookSecret: secret,
		Language:      lang,
		BotUser:       botUser,
	}
}

// BotIdentity retorna la identidad inyectable con la que el detector de
// duplicados reconoce los comentarios propios.
func (c *Config) BotIdentity() models.BotIdentity {
	return models.BotIdentity{
		Login: c.BotUser,
		Type:  botUserType,
	}
}

// Validate verifica que la configuración alcance para levantar el servidor.
func (c *Config) Validate() error {
	if c.GithubToken == "" {
		return domainerrors.NewConfigError("GithubToken", "token de github necesario", nil)
	}
	if c.WebhookSecret == "" {
		return domainerrors.NewConfigError("WebhookSecret", "webhook secret necesario", nil)
	}
	if c.Addr == "" {
		return domainerrors.NewConfigError("Addr", "la dirección de escucha no puede estar vacía", nil)
	}
	return nil
}
