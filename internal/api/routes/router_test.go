package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/docflow/internal/api/middleware"
	"github.com/linskybing/docflow/internal/application"
	"github.com/linskybing/docflow/internal/config"
	"github.com/linskybing/docflow/internal/domain/document"
	"github.com/linskybing/docflow/internal/domain/signing"
	"github.com/linskybing/docflow/internal/notify"
	"github.com/linskybing/docflow/internal/repository"
	"github.com/linskybing/docflow/internal/testutils"
	"github.com/linskybing/docflow/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ...notify.Event) {}

type apiFixture struct {
	router *gin.Engine
	repos  *repository.Repos
	tokens map[string]string
}

// --------------------- Setup ---------------------
func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	config.Issuer = "docflow-test"
	config.TokenTTL = time.Hour
	middleware.Init()

	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	svc := application.New(repos, nopPublisher{})
	svc.User.AutoProvision = true

	f := &apiFixture{
		router: NewRouter(svc, notify.NewHub()),
		repos:  repos,
		tokens: make(map[string]string),
	}
	for _, email := range []string{"creator@test.com", "editor@test.com", "sam@test.com", "other@test.com"} {
		f.register(t, email)
	}
	return f
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) as(t *testing.T, email, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return f.do(t, method, path, f.tokens[email], body)
}

func (f *apiFixture) register(t *testing.T, email string) {
	t.Helper()
	w := f.do(t, http.MethodPost, "/register", "", map[string]string{
		"email": email, "password": "secret1", "name": email[:3],
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/login", "", map[string]string{"email": email, "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tok response.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	f.tokens[email] = tok.Token
}

// promote grants elevated access and refreshes the caller's token.
func (f *apiFixture) promote(t *testing.T, email string) {
	t.Helper()
	u, err := f.repos.User.GetUserByEmail(email)
	require.NoError(t, err)
	u.CanAccessFolders = true
	require.NoError(t, f.repos.User.SaveUser(&u))

	w := f.do(t, http.MethodPost, "/login", "", map[string]string{"email": email, "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tok response.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	f.tokens[email] = tok.Token
}

type docBody struct {
	ID         uint            `json:"id"`
	Status     document.Status `json:"status"`
	IsRejected bool            `json:"is_rejected"`
}

func decodeDoc(t *testing.T, w *httptest.ResponseRecorder) docBody {
	t.Helper()
	var d docBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d), w.Body.String())
	return d
}

func schema(name string) []map[string]any {
	return []map[string]any{
		{"id": "f1", "type": "text", "label": "Name", "required": true, "value": name},
		{"id": "sig", "type": "signer_signature", "signerEmail": "sam@test.com"},
	}
}

// readyForReview drives a fresh document to READY_FOR_REVIEW over HTTP.
func (f *apiFixture) readyForReview(t *testing.T) uint {
	t.Helper()
	w := f.as(t, "creator@test.com", http.MethodPost, "/templates", map[string]any{
		"name": "TA agreement", "coordinate_fields": schema(""),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tpl struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tpl))

	w = f.as(t, "creator@test.com", http.MethodPost, "/documents", map[string]any{
		"template_id": tpl.ID, "editor_email": "editor@test.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	doc := decodeDoc(t, w)
	assert.Equal(t, document.StatusEditing, doc.Status)

	path := fmt.Sprintf("/documents/%d", doc.ID)
	w = f.as(t, "editor@test.com", http.MethodPut, path, map[string]any{
		"data": map[string]any{"coordinateFields": schema("Alice")},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.as(t, "editor@test.com", http.MethodPost, path+"/submit-for-review", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, document.StatusReadyForReview, decodeDoc(t, w).Status)
	return doc.ID
}

func (f *apiFixture) signing(t *testing.T) uint {
	t.Helper()
	id := f.readyForReview(t)
	path := fmt.Sprintf("/documents/%d", id)

	w := f.as(t, "creator@test.com", http.MethodPost, path+"/assign-signer", map[string]string{"email": "sam@test.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.as(t, "creator@test.com", http.MethodPost, path+"/complete-reviewer-assignment", map[string]bool{"skip_review": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, document.StatusSigning, decodeDoc(t, w).Status)
	return id
}

// --------------------- Auth ---------------------
func TestRouter_RequiresToken(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodGet, "/documents", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/documents", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_LoginSetsCookie(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/login", "", map[string]string{"email": "CREATOR@test.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" && c.Value != "" {
			found = true
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found)

	w = f.do(t, http.MethodPost, "/login", "", map[string]string{"email": "creator@test.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RegisterValidation(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodPost, "/register", "", map[string]string{"email": "nope", "password": "secret1", "name": "X"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "email must be a valid email address")

	w = f.do(t, http.MethodPost, "/register", "", map[string]string{"email": "creator@test.com", "password": "secret1", "name": "X"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouter_MetricsExposed(t *testing.T) {
	f := setupAPI(t)

	w := f.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --------------------- Workflow ---------------------
func TestRouter_FullWorkflow(t *testing.T) {
	f := setupAPI(t)
	id := f.signing(t)
	path := fmt.Sprintf("/documents/%d", id)

	w := f.as(t, "sam@test.com", http.MethodGet, path+"/can-sign", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var allowed response.BoolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &allowed))
	assert.True(t, allowed.Allowed)

	w = f.as(t, "sam@test.com", http.MethodPost, path+"/approve", map[string]string{"signature": "data:image/png;base64,AAAA"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, document.StatusCompleted, decodeDoc(t, w).Status)

	w = f.as(t, "creator@test.com", http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp document.DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, document.StatusCompleted, resp.Status)
	require.NotEmpty(t, resp.StatusLogs)
	assert.Equal(t, document.StatusCompleted, resp.StatusLogs[len(resp.StatusLogs)-1].Status)
}

func TestRouter_ErrorMapping(t *testing.T) {
	f := setupAPI(t)
	id := f.readyForReview(t)
	path := fmt.Sprintf("/documents/%d", id)

	// not a role holder
	w := f.as(t, "other@test.com", http.MethodGet, path, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// wrong state
	w = f.as(t, "editor@test.com", http.MethodPost, path+"/start-editing", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// missing reviewer
	w = f.as(t, "creator@test.com", http.MethodPost, path+"/complete-reviewer-assignment", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.as(t, "creator@test.com", http.MethodGet, "/documents/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.as(t, "creator@test.com", http.MethodGet, "/documents/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.as(t, "creator@test.com", http.MethodDelete, path+"/remove-signer?email=nobody@test.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SubmitReportsMissingFields(t *testing.T) {
	f := setupAPI(t)
	w := f.as(t, "creator@test.com", http.MethodPost, "/templates", map[string]any{
		"name": "Form", "coordinate_fields": schema(""),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var tpl struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tpl))

	w = f.as(t, "creator@test.com", http.MethodPost, "/documents", map[string]any{
		"template_id": tpl.ID, "editor_email": "editor@test.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	doc := decodeDoc(t, w)

	w = f.as(t, "editor@test.com", http.MethodPost, fmt.Sprintf("/documents/%d/submit-for-review", doc.ID), nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Name"}, body.Details)
}

func TestRouter_RejectWithoutReason(t *testing.T) {
	f := setupAPI(t)
	id := f.signing(t)

	w := f.as(t, "sam@test.com", http.MethodPost, fmt.Sprintf("/documents/%d/reject", id), map[string]string{})
	require.Equal(t, http.StatusOK, w.Code)
	d := decodeDoc(t, w)
	assert.Equal(t, document.StatusEditing, d.Status)
	assert.True(t, d.IsRejected)

	logs, err := f.repos.StatusLog.ListStatusLogs(id)
	require.NoError(t, err)
	assert.Equal(t, "document rejected", logs[len(logs)-1].Comment)
}

func TestRouter_TodoAndNotifications(t *testing.T) {
	f := setupAPI(t)
	f.readyForReview(t)

	w := f.as(t, "editor@test.com", http.MethodGet, "/documents/todo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var todo []document.DocumentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
	assert.Len(t, todo, 1)

	w = f.as(t, "editor@test.com", http.MethodGet, "/notifications", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.as(t, "editor@test.com", http.MethodPut, "/notifications/42/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --------------------- Signing links ---------------------
func TestRouter_SigningLink(t *testing.T) {
	f := setupAPI(t)
	id := f.signing(t)

	tok := signing.Token{
		Token:       "link-123",
		DocumentID:  id,
		SignerEmail: "sam@test.com",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.repos.SigningToken.CreateSigningToken(&tok))

	w := f.do(t, http.MethodPost, "/signing/unknown/approve", "", map[string]string{"signature": "sig"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost, "/signing/link-123/approve", "", map[string]string{"signature": "sig"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, document.StatusCompleted, decodeDoc(t, w).Status)

	w = f.do(t, http.MethodPost, "/signing/link-123/approve", "", map[string]string{"signature": "sig"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_SendMessage(t *testing.T) {
	f := setupAPI(t)
	id := f.signing(t)
	path := fmt.Sprintf("/documents/%d/send-message", id)
	f.promote(t, "other@test.com")

	w := f.as(t, "creator@test.com", http.MethodPost, path, map[string]string{"recipient_email": "sam@test.com", "recipient_role": "SIGNER"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.as(t, "other@test.com", http.MethodPost, path, map[string]string{"recipient_email": "sam@test.com", "recipient_role": "CREATOR"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "recipient role must be one of EDITOR REVIEWER SIGNER")

	w = f.as(t, "other@test.com", http.MethodPost, path, map[string]string{"recipient_email": "editor@test.com", "recipient_role": "EDITOR"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = f.as(t, "other@test.com", http.MethodPost, path, map[string]string{"recipient_email": "sam@test.com", "recipient_role": "SIGNER"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Signing link sent")
}

func TestRouter_DuplicateTemplate(t *testing.T) {
	f := setupAPI(t)
	w := f.as(t, "creator@test.com", http.MethodPost, "/templates", map[string]any{
		"name": "TA agreement", "coordinate_fields": schema(""),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var src struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &src))
	path := fmt.Sprintf("/templates/%d/duplicate", src.ID)

	w = f.as(t, "editor@test.com", http.MethodPost, path, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.as(t, "editor@test.com", http.MethodPost, path, map[string]string{"name": "TA agreement (copy)"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var dup struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		CreatedByID uint   `json:"created_by_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dup))
	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "TA agreement (copy)", dup.Name)

	editor, err := f.repos.User.GetUserByEmail("editor@test.com")
	require.NoError(t, err)
	assert.Equal(t, editor.ID, dup.CreatedByID)
}
