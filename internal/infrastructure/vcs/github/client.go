package github

import (
	"context"
	"fmt"
	"net/http"

	domainerrors "github.com/Tomas-vilte/MateBot/internal/domain/errors"
	"github.com/Tomas-vilte/MateBot/internal/domain/models"
	"github.com/Tomas-vilte/MateBot/internal/domain/ports"
	"github.com/Tomas-vilte/MateBot/internal/i18n"
	"github.com/google/go-github/v80/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

const (
	// repoConfigPath es la ruta fija del archivo de configuración dentro
	// del repositorio.
	repoConfigPath = ".github/config.yml"
	// repoConfigRef es la rama desde la que se lee la configuración.
	repoConfigRef = "develop"

	commentsPerPage = 100
)

type IssuesService interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error)
}

type RepositoriesService interface {
	GetBranch(ctx context.Context, owner, repo, branch string, maxRedirects int) (*github.Branch, *github.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error)
}

type GitService interface {
	CreateRef(ctx context.Context, owner, repo string, ref github.CreateRef) (*github.Reference, *github.Response, error)
}

type GraphQLService interface {
	Mutate(ctx context.Context, m interface{}, input githubv4.Input, variables map[string]interface{}) error
}

type GitHubClient struct {
	issuesService IssuesService
	repoService   RepositoriesService
	gitService    GitService
	graphql       GraphQLService
	trans         *i18n.Translations
}

func NewGitHubClient(token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		issuesService: client.Issues,
		repoService:   client.Repositories,
		gitService:    client.Git,
		graphql:       githubv4.NewClient(httpClient),
		trans:         trans,
	}
}

func NewGitHubClientWithServices(
	issuesService IssuesService,
	repoService RepositoriesService,
	gitService GitService,
	graphql GraphQLService,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		issuesService: issuesService,
		repoService:   repoService,
		gitService:    gitService,
		graphql:       graphql,
		trans:         trans,
	}
}

// GetRepoConfig lee .github/config.yml desde la rama develop del repositorio
// y mergea su contenido sobre los defaults. Un archivo ausente (404) no es
// un error: se usan los defaults de forma transparente.
func (ghc *GitHubClient) GetRepoConfig(ctx context.Context, owner, repo string) (models.RepoConfig, error) {
	fileContent, _, resp, err := ghc.repoService.GetContents(ctx, owner, repo, repoConfigPath, &github.RepositoryContentGetOptions{
		Ref: repoConfigRef,
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return models.DefaultRepoConfig(), nil
		}
		return models.RepoConfig{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.load_repo_config", 0, map[string]interface{}{
			"Owner": owner,
			"Repo":  repo,
		}), err)
	}

	if fileContent == nil {
		return models.DefaultRepoConfig(), nil
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return models.RepoConfig{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.load_repo_config", 0, map[string]interface{}{
			"Owner": owner,
			"Repo":  repo,
		}), err)
	}

	var cfg models.RepoConfig
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return models.RepoConfig{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.load_repo_config", 0, map[string]interface{}{
			"Owner": owner,
			"Repo":  repo,
		}), err)
	}

	return cfg.MergeOverDefaults(), nil
}

// ListCommentAuthors recorre todos los comentarios del issue, página por
// página, hasta agotarlos. La corrección del detector de duplicados depende
// de no cortar en la primera página.
func (ghc *GitHubClient) ListCommentAuthors(ctx context.Context, owner, repo string, issueNumber int) ([]models.CommentAuthor, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: commentsPerPage},
	}

	var authors []models.CommentAuthor
	for {
		comments, resp, err := ghc.issuesService.ListComments(ctx, owner, repo, issueNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.list_comments", 0, map[string]interface{}{
				"IssueNumber": issueNumber,
			}), err)
		}

		for _, comment := range comments {
			authors = append(authors, models.CommentAuthor{
				Login: comment.GetUser().GetLogin(),
				Type:  comment.GetUser().GetType(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return authors, nil
}

// AddIssueToProject vincula el issue al proyecto vía la mutación
// addProjectV2ItemById de la API GraphQL.
func (ghc *GitHubClient) AddIssueToProject(ctx context.Context, issueNodeID, projectID string) error {
	var mutation struct {
		AddProjectV2ItemByID struct {
			Item struct {
				ID githubv4.ID
			}
		} `graphql:"addProjectV2ItemById(input: $input)"`
	}

	input := githubv4.AddProjectV2ItemByIdInput{
		ProjectID: githubv4.ID(projectID),
		ContentID: githubv4.ID(issueNodeID),
	}

	if err := ghc.graphql.Mutate(ctx, &mutation, input, nil); err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.project_mutation", 0, map[string]interface{}{
			"IssueNodeID": issueNodeID,
			"ProjectID":   projectID,
		}), err)
	}
	return nil
}

// GetBranchSHA resuelve el commit al que apunta la rama.
func (ghc *GitHubClient) GetBranchSHA(ctx context.Context, owner, repo, branch string) (string, error) {
	b, _, err := ghc.repoService.GetBranch(ctx, owner, repo, branch, 0)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.resolve_base_branch", 0, map[string]interface{}{
			"Branch": branch,
		}), err)
	}
	return b.GetCommit().GetSHA(), nil
}

// CreateBranch crea refs/heads/<branchName> apuntando a sha. Si la ref ya
// existe, la API responde 422 y eso se traduce a BranchExistsError para que
// el llamador decida la política.
func (ghc *GitHubClient) CreateBranch(ctx context.Context, owner, repo, branchName, sha string) error {
	ref := github.CreateRef{
		Ref: "refs/heads/" + branchName,
		SHA: sha,
	}

	_, resp, err := ghc.gitService.CreateRef(ctx, owner, repo, ref)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return domainerrors.NewBranchExistsError(branchName)
		}
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.create_branch", 0, map[string]interface{}{
			"Branch": branchName,
		}), err)
	}
	return nil
}

// CreateIssueComment publica un comentario en el issue.
func (ghc *GitHubClient) CreateIssueComment(ctx context.Context, owner, repo string, issueNumber int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}

	_, _, err := ghc.issuesService.CreateComment(ctx, owner, repo, issueNumber, comment)
	if err != nil {
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.create_comment", 0, map[string]interface{}{
			"IssueNumber": issueNumber,
		}), err)
	}
	return nil
}
