package webhook

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Tomas-vilte/MateBot/internal/domain/models"
	"github.com/google/go-github/v80/github"
	"go.uber.org/zap"
)

// Automator procesa un evento de issue etiquetado.
type Automator interface {
	HandleIssueLabeled(ctx context.Context, event models.IssueEvent) error
}

// Server recibe las entregas del webhook de GitHub: valida la firma HMAC,
// parsea el payload y despacha los eventos "issues/labeled" al automator.
// Todo otro evento se reconoce con 200 y se ignora.
type Server struct {
	secret    []byte
	automator Automator
	logger    *zap.Logger
}

func NewServer(secret string, automator Automator, logger *zap.Logger) *Server {
	return &Server{
		secret:    []byte(secret),
		automator: automator,
		logger:    logger,
	}
}

// Routes arma el mux con los endpoints del servidor.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.handleWebhook)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := github.ValidatePayload(r, s.secret)
	if err != nil {
		s.logger.Warn("firma de webhook inválida", zap.Error(err))
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		s.logger.Warn("payload de webhook inválido", zap.Error(err))
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	issuesEvent, ok := event.(*github.IssuesEvent)
	if !ok || issuesEvent.GetAction() != "labeled" {
		w.WriteHeader(http.StatusOK)
		return
	}

	issueEvent := toIssueEvent(issuesEvent)
	s.logger.Info("evento recibido",
		zap.String("repo", issueEvent.Owner+"/"+issueEvent.Repo),
		zap.Int("issue", issueEvent.Number),
		zap.Int("comments", issueEvent.CommentCount),
		zap.Strings("labels", issueEvent.Labels))

	if err := s.automator.HandleIssueLabeled(r.Context(), issueEvent); err != nil {
		s.logger.Error("error procesando el evento",
			zap.Int("issue", issueEvent.Number),
			zap.Error(err))
		http.Error(w, "event handling failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func toIssueEvent(event *github.IssuesEvent) models.IssueEvent {
	issue := event.GetIssue()

	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	return models.IssueEvent{
		Owner:        event.GetRepo().GetOwner().GetLogin(),
		Repo:         event.GetRepo().GetName(),
		Number:       issue.GetNumber(),
		Title:        issue.GetTitle(),
		NodeID:       issue.GetNodeID(),
		Labels:       labels,
		CommentCount: issue.GetComments(),
	}
}

// ListenAndServe levanta el servidor HTTP y lo apaga de forma ordenada
// cuando el contexto se cancela.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("servidor escuchando", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
