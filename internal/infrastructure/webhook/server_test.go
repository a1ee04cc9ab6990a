package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tomas-vilte/MateBot/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type MockAutomator struct {
	mock.Mock
}

func (m *MockAutomator) HandleIssueLabeled(ctx context.Context, event models.IssueEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func signBody(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

var labeledPayload = []byte(`{
	"action": "labeled",
	"issue": {
		"number": 7,
		"title": "Add dark mode",
		"node_id": "NODE7",
		"comments": 3,
		"labels": [{"name": "enhancement"}, {"name": "ui"}]
	},
	"repository": {
		"name": "test-repo",
		"owner": {"login": "test-owner"}
	}
}`)

func newWebhookRequest(t *testing.T, eventType string, body []byte, signed bool) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", eventType)
	if signed {
		req.Header.Set("X-Hub-Signature-256", signBody([]byte(testSecret), body))
	} else {
		req.Header.Set("X-Hub-Signature-256", "sha256=deadbeef")
	}
	return req
}

func TestServer_HandleWebhook(t *testing.T) {
	t.Run("should dispatch a labeled issue to the automator", func(t *testing.T) {
		mockAutomator := &MockAutomator{}
		server := NewServer(testSecret, mockAutomator, zap.NewNop())

		expected := models.IssueEvent{
			Owner:        "test-owner",
			Repo:         "test-repo",
			Number:       7,
			Title:        "Add dark mode",
			NodeID:       "NODE7",
			Labels:       []string{"enhancement", "ui"},
			CommentCount: 3,
		}
		mockAutomator.On("HandleIssueLabeled", mock.Anything, expected).Return(nil)

		rec := httptest.NewRecorder()
		server.Routes().ServeHTTP(rec, newWebhookRequest(t, "issues", labeledPayload, true))

		assert.Equal(t, http.StatusOK, rec.Code)
		mockAutomator.AssertExpectations(t)
	})

	t.Run("should reject a bad signature without dispatching", func(t *testing.T) {
		mockAutomator := &MockAutomator{}
		server := NewServer(testSecret, mockAutomator, zap.NewNop())

		rec := httptest.NewRecorder()
		server.Routes().ServeHTTP(rec, newWebhookRequest(t, "issues", labeledPayload, false))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockAutomator.AssertNotCalled(t, "HandleIssueLabeled", mock.Anything, mock.Anything)
	})

	t.Run("should acknowledge and ignore other issue actions", func(t *testing.T) {
		mockAutomator := &MockAutomator{}
		server := NewServer(testSecret, mockAutomator, zap.NewNop())

		body := []byte(`{"action": "opened", "issue": {"number": 7}}`)
		rec := httptest.NewRecorder()
		server.Routes().ServeHTTP(rec, newWebhookRequest(t, "issues", body, true))

		assert.Equal(t, http.StatusOK, rec.Code)
		mockAutomator.AssertNotCalled(t, "HandleIssueLabeled", mock.Anything, mock.Anything)
	})

	t.Run("should acknowledge and ignore other event types", func(t *testing.T) {
		mockAutomator := &MockAutomator{}
		server := NewServer(testSecret, mockAutomator, zap.NewNop())

		body := []byte(`{"ref": "refs/heads/main"}`)
		rec := httptest.NewRecorder()
		server.Routes().ServeHTTP(rec, newWebhookRequest(t, "push", body, true))

		assert.Equal(t, http.StatusOK, rec.Code)
		mockAutomator.AssertNotCalled(t, "HandleIssueLabeled", mock.Anything, mock.Anything)
	})

	t.Run("should surface automator failures as 500", func(t *testing.T) {
		mockAutomator := &MockAutomator{}
		server := NewServer(testSecret, mockAutomator, zap.NewNop())

		mockAutomator.On("HandleIssueLabeled", mock.Anything, mock.Anything).
			Return(errors.New("boom"))

		rec := httptest.NewRecorder()
		server.Routes().ServeHTTP(rec, newWebhookRequest(t, "issues", labeledPayload, true))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("should answer health checks", func(t *testing.T) {
		server := NewServer(testSecret, &MockAutomator{}, zap.NewNop())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		server.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
