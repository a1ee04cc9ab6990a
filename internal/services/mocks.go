package services

import (
	"context"

	"github.com/Tomas-vilte/MateBot/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) GetRepoConfig(ctx context.Context, owner, repo string) (models.RepoConfig, error) {
	args := m.Called(ctx, owner, repo)
	return args.Get(0).(models.RepoConfig), args.Error(1)
}

func (m *MockVCSClient) ListCommentAuthors(ctx context.Context, owner, repo string, issueNumber int) ([]models.CommentAuthor, error) {
	args := m.Called(ctx, owner, repo, issueNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentAuthor), args.Error(1)
}

func (m *MockVCSClient) AddIssueToProject(ctx context.Context, issueNodeID, projectID string) error {
	args := m.Called(ctx, issueNodeID, projectID)
	return args.Error(0)
}

func (m *MockVCSClient) GetBranchSHA(ctx context.Context, owner, repo, branch string) (string, error) {
	args := m.Called(ctx, owner, repo, branch)
	return args.String(0), args.Error(1)
}

func (m *MockVCSClient) CreateBranch(ctx context.Context, owner, repo, branchName, sha string) error {
	args := m.Called(ctx, owner, repo, branchName, sha)
	return args.Error(0)
}

func (m *MockVCSClient) CreateIssueComment(ctx context.Context, owner, repo string, issueNumber int, body string) error {
	args := m.Called(ctx, owner, repo, issueNumber, body)
	return args.Error(0)
}
