package ports

import (
	"context"

	"github.com/Tomas-vilte/MateBot/internal/domain/models"
)

// VCSClient define los métodos para interactuar con la API del sistema de
// control de versiones (GitHub u otro proveedor compatible).
type VCSClient interface {
	// GetRepoConfig lee la configuración del repositorio y la mergea sobre
	// los defaults. Un archivo ausente no es un error.
	GetRepoConfig(ctx context.Context, owner, repo string) (models.RepoConfig, error)
	// ListCommentAuthors retorna el autor de cada comentario existente en el
	// issue, recorriendo todas las páginas.
	ListCommentAuthors(ctx context.Context, owner, repo string, issueNumber int) ([]models.CommentAuthor, error)
	// AddIssueToProject vincula el issue (por su node ID) al proyecto.
	AddIssueToProject(ctx context.Context, issueNodeID, projectID string) error
	// GetBranchSHA resuelve el commit actual de una rama.
	GetBranchSHA(ctx context.Context, owner, repo, branch string) (string, error)
	// CreateBranch crea refs/heads/<branchName> apuntando a sha.
	CreateBranch(ctx context.Context, owner, repo, branchName, sha string) error
	// CreateIssueComment publica un comentario en el issue.
	CreateIssueComment(ctx context.Context, owner, repo string, issueNumber int, body string) error
}
