package services

import (
	"context"
	"errors"

	domainerrors "github.com/Tomas-vilte/MateBot/internal/domain/errors"
	"github.com/Tomas-vilte/MateBot/internal/domain/models"
	"github.com/Tomas-vilte/MateBot/internal/domain/ports"
	"github.com/Tomas-vilte/MateBot/internal/i18n"
	"go.uber.org/zap"
)

// failurePolicy define qué se hace con el error de cada llamada externa:
// tragarlo (best-effort) o propagarlo al framework de entrega.
type failurePolicy int

const (
	policyPropagate failurePolicy = iota
	policySwallow
)

// LabelAutomator maneja el evento "issue etiquetado": vincula el issue al
// proyecto, crea una rama desde la rama base configurada y comenta el issue
// con las instrucciones de checkout, evitando duplicar acciones si ya
// comentó antes.
type LabelAutomator struct {
	vcs      ports.VCSClient
	identity models.BotIdentity
	trans    *i18n.Translations
	logger   *zap.Logger

	// skipExistingBranch trata BranchExistsError como corrida duplicada:
	// se loggea y se corta sin comentar, en vez de propagar.
	skipExistingBranch bool
}

func NewLabelAutomator(vcs ports.VCSClient, identity models.BotIdentity, trans *i18n.Translations, logger *zap.Logger, skipExistingBranch bool) *LabelAutomator {
	return &LabelAutomator{
		vcs:                vcs,
		identity:           identity,
		trans:              trans,
		logger:             logger,
		skipExistingBranch: skipExistingBranch,
	}
}

// HandleIssueLabeled ejecuta la secuencia completa para un evento. Los pasos
// corren en orden estricto: configuración, filtro de etiquetas, detección de
// duplicados, vinculación al proyecto (best-effort), resolución de la rama
// base, creación de la rama y comentario.
func (s *LabelAutomator) HandleIssueLabeled(ctx context.Context, event models.IssueEvent) error {
	cfg, err := s.vcs.GetRepoConfig(ctx, event.Owner, event.Repo)
	if err != nil {
		return err
	}

	if !cfg.HasAnyLabel(event.Labels) {
		s.logger.Debug("el issue no tiene ninguna etiqueta configurada",
			zap.Int("issue", event.Number),
			zap.Strings("labels", event.Labels))
		return nil
	}

	commented, err := s.hasBotComment(ctx, event)
	if err != nil {
		return err
	}
	if commented {
		s.logger.Info("el bot ya comentó este issue, no se repiten acciones",
			zap.Int("issue", event.Number))
		return nil
	}

	_ = s.runStep("project-linkage", policySwallow, func() error {
		return s.addToProject(ctx, event, cfg)
	})

	if cfg.BaseBranch == "" {
		s.logger.Warn(s.trans.GetMessage("warning.no_base_branch", 0, nil),
			zap.Int("issue", event.Number))
		return nil
	}

	sha, err := s.vcs.GetBranchSHA(ctx, event.Owner, event.Repo, cfg.BaseBranch)
	if err != nil {
		return err
	}

	branch := BranchNameForIssue(event.Number, event.Title)
	if err := s.createBranch(ctx, event, branch, sha); err != nil {
		var branchExists *domainerrors.BranchExistsError
		if s.skipExistingBranch && errors.As(err, &branchExists) {
			s.logger.Warn(s.trans.GetMessage("error.branch_exists", 0, map[string]interface{}{
				"Branch": branch,
			}), zap.Int("issue", event.Number))
			return nil
		}
		return err
	}

	body := s.trans.GetMessage("branch_comment_body", 0, map[string]interface{}{
		"Branch": branch,
	})
	if err := s.runStep("issue-comment", policyPropagate, func() error {
		return s.vcs.CreateIssueComment(ctx, event.Owner, event.Repo, event.Number, body)
	}); err != nil {
		return err
	}

	s.logger.Info("issue procesado",
		zap.Int("issue", event.Number),
		zap.String("branch", branch))
	return nil
}

// hasBotComment recorre todos los comentarios existentes del issue y busca
// uno cuyo autor sea la identidad del bot. Se listan siempre, aun cuando el
// payload reporta cero comentarios, porque el contador puede estar desfasado
// respecto del estado real.
func (s *LabelAutomator) hasBotComment(ctx context.Context, event models.IssueEvent) (bool, error) {
	authors, err := s.vcs.ListCommentAuthors(ctx, event.Owner, event.Repo, event.Number)
	if err != nil {
		return false, err
	}

	for _, author := range authors {
		if s.identity.Matches(author) {
			return true, nil
		}
	}
	return false, nil
}

// addToProject vincula el issue al proyecto configurado. Con PROJECT_ID
// vacío solo se advierte; el paso es independiente de la creación de la
// rama y del comentario.
func (s *LabelAutomator) addToProject(ctx context.Context, event models.IssueEvent, cfg models.RepoConfig) error {
	if cfg.ProjectID == "" {
		s.logger.Warn(s.trans.GetMessage("warning.no_project_id", 0, nil),
			zap.Int("issue", event.Number))
		return nil
	}

	if !cfg.HasAnyLabel(event.Labels) {
		return nil
	}

	return s.vcs.AddIssueToProject(ctx, event.NodeID, cfg.ProjectID)
}

func (s *LabelAutomator) createBranch(ctx context.Context, event models.IssueEvent, branch, sha string) error {
	if err := s.vcs.CreateBranch(ctx, event.Owner, event.Repo, branch, sha); err != nil {
		return err
	}
	s.logger.Info("rama creada",
		zap.Int("issue", event.Number),
		zap.String("branch", branch),
		zap.String("sha", sha))
	return nil
}

// runStep ejecuta una llamada externa aplicando su política de fallo de
// forma explícita en el punto de invocación.
func (s *LabelAutomator) runStep(name string, policy failurePolicy, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	if policy == policySwallow {
		s.logger.Error("paso best-effort falló",
			zap.String("step", name),
			zap.Error(err))
		return nil
	}
	return err
}
