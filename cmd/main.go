package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/Tomas-vilte/MateBot/internal/config"
	"github.com/Tomas-vilte/MateBot/internal/i18n"
	ghclient "github.com/Tomas-vilte/MateBot/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateBot/internal/infrastructure/webhook"
	"github.com/Tomas-vilte/MateBot/internal/services"
	"github.com/Tomas-vilte/MateBot/internal/version"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "matebot",
		Usage:       "Bot de GitHub que crea ramas y comenta issues etiquetados",
		Version:     version.Version,
		Description: "Cuando un issue recibe una etiqueta configurada, MateBot lo vincula al proyecto, crea una rama desde la rama base y comenta las instrucciones de checkout.",
		Commands: []*cli.Command{
			serveCommand(),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Levanta el servidor de webhooks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "Dirección de escucha del servidor HTTP",
				Sources: cli.EnvVars("ADDR"),
			},
			&cli.StringFlag{
				Name:    "github-token",
				Usage:   "Token de acceso a la API de GitHub",
				Sources: cli.EnvVars("GITHUB_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "webhook-secret",
				Usage:   "Secreto para validar la firma de cada entrega",
				Sources: cli.EnvVars("WEBHOOK_SECRET"),
			},
			&cli.StringFlag{
				Name:    "bot-user",
				Usage:   "Login con el que el bot reconoce sus propios comentarios",
				Sources: cli.EnvVars("BOT_USER"),
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "Idioma de los mensajes (en, es)",
				Sources: cli.EnvVars("BOT_LANG"),
			},
			&cli.BoolFlag{
				Name:    "skip-existing-branch",
				Usage:   "Trata una rama ya existente como corrida duplicada en vez de fallar",
				Sources: cli.EnvVars("SKIP_EXISTING_BRANCH"),
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfgApp := cfg.NewConfig(
		cmd.String("addr"),
		cmd.String("github-token"),
		cmd.String("webhook-secret"),
		cmd.String("lang"),
		cmd.String("bot-user"),
	)
	cfgApp.SkipExistingBranch = cmd.Bool("skip-existing-branch")

	if err := cfgApp.Validate(); err != nil {
		return err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	client := ghclient.NewGitHubClient(cfgApp.GithubToken, translations)
	automator := services.NewLabelAutomator(client, cfgApp.BotIdentity(), translations, logger, cfgApp.SkipExistingBranch)
	server := webhook.NewServer(cfgApp.WebhookSecret, automator, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx, cfgApp.Addr)
}
