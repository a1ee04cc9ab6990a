package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/mock"
)

type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	var comments []*github.IssueComment
	if args.Get(0) != nil {
		comments = args.Get(0).([]*github.IssueComment)
	}
	return comments, toResponse(args.Get(1)), args.Error(2)
}

func (m *MockIssuesService) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, comment)
	var created *github.IssueComment
	if args.Get(0) != nil {
		created = args.Get(0).(*github.IssueComment)
	}
	return created, toResponse(args.Get(1)), args.Error(2)
}

type MockRepositoriesService struct {
	mock.Mock
}

func (m *MockRepositoriesService) GetBranch(ctx context.Context, owner, repo, branch string, maxRedirects int) (*github.Branch, *github.Response, error) {
	args := m.Called(ctx, owner, repo, branch, maxRedirects)
	var b *github.Branch
	if args.Get(0) != nil {
		b = args.Get(0).(*github.Branch)
	}
	return b, toResponse(args.Get(1)), args.Error(2)
}

func (m *MockRepositoriesService) GetContents(ctx context.Context, owner, repo, path string, opts *github.RepositoryContentGetOptions) (*github.RepositoryContent, []*github.RepositoryContent, *github.Response, error) {
	args := m.Called(ctx, owner, repo, path, opts)
	var fileContent *github.RepositoryContent
	if args.Get(0) != nil {
		fileContent = args.Get(0).(*github.RepositoryContent)
	}
	var dirContent []*github.RepositoryContent
	if args.Get(1) != nil {
		dirContent = args.Get(1).([]*github.RepositoryContent)
	}
	return fileContent, dirContent, toResponse(args.Get(2)), args.Error(3)
}

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) CreateRef(ctx context.Context, owner, repo string, ref github.CreateRef) (*github.Reference, *github.Response, error) {
	args := m.Called(ctx, owner, repo, ref)
	var created *github.Reference
	if args.Get(0) != nil {
		created = args.Get(0).(*github.Reference)
	}
	return created, toResponse(args.Get(1)), args.Error(2)
}

type MockGraphQLService struct {
	mock.Mock
}

func (m *MockGraphQLService) Mutate(ctx context.Context, mutation interface{}, input githubv4.Input, variables map[string]interface{}) error {
	args := m.Called(ctx, mutation, input, variables)
	return args.Error(0)
}

func toResponse(v interface{}) *github.Response {
	if v == nil {
		return nil
	}
	return v.(*github.Response)
}
