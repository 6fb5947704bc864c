package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/agecare/companion-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adviceRequest(content string) models.AgentRequest {
	return models.AgentRequest{Messages: []models.AgentMessage{
		{Role: models.RoleUser, Content: content},
	}}
}

func TestAdvice_Emergency(t *testing.T) {
	env := setupAPITest(t)

	w := env.doJSON(t, "POST", "/v1/advice", adviceRequest("I have chest pain"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AgentResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, models.AgentStatusSuccess, resp.Status)
	assert.Contains(t, resp.Data["message"], "emergency")
}

func TestAdvice_MalformedBodyStaysOK(t *testing.T) {
	env := setupAPITest(t)

	req, _ := http.NewRequest("POST", "/v1/advice", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := env.doRaw(t, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AgentResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, models.AgentStatusError, resp.Status)
	assert.NotEmpty(t, resp.ErrorMessage)
}

func TestRuleEngine_Match(t *testing.T) {
	env := setupAPITest(t)

	w := env.doJSON(t, "POST", "/v1/advice/rules", adviceRequest("remind me about my medication"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AgentResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, models.AgentStatusSuccess, resp.Status)
	assert.Contains(t, resp.Data["message"], "plan safe times")
}

func TestRuleEngine_NoMatch(t *testing.T) {
	env := setupAPITest(t)

	w := env.doJSON(t, "POST", "/v1/advice/rules", adviceRequest("tell me about gardening"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AgentResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, models.AgentStatusSuccess, resp.Status)
	assert.Contains(t, resp.Data["message"], "No rule matched")
}

func TestHealthCheck(t *testing.T) {
	env := setupAPITest(t)

	w := env.doJSON(t, "GET", "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Ready)
}
