package routes_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/clientdesk/internal/config"
	"github.com/linskybing/clientdesk/internal/domain/audit"
	"github.com/linskybing/clientdesk/internal/domain/client"
	"github.com/linskybing/clientdesk/internal/domain/project"
	"github.com/linskybing/clientdesk/internal/domain/user"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/linskybing/clientdesk/internal/testutils"
	"github.com/linskybing/clientdesk/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var alice = user.User{ID: 1, Username: "alice"}

type harness struct {
	t     *testing.T
	r     *gin.Engine
	m     *testutils.Mocks
	cfg   *config.Config
	token string
}

func newHarness(t *testing.T) *harness {
	r, m, cfg := testutils.SetupRouter(t)
	return &harness{t: t, r: r, m: m, cfg: cfg}
}

// login makes alice the authenticated caller for the rest of the test.
func (h *harness) login() *harness {
	h.token = testutils.Token(h.t, h.cfg, alice.ID, alice.Username)
	h.m.User.EXPECT().GetUserByID(alice.ID).Return(alice, nil).AnyTimes()
	return h
}

func (h *harness) do(method, path string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(h.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	w := httptest.NewRecorder()
	h.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthz(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[response.HealthResponse](t, w).Status)
}

func TestListClientsIsPublic(t *testing.T) {
	h := newHarness(t)
	h.m.Client.EXPECT().ListClients().Return([]client.Client{
		{ID: 1, ClientName: "Acme", CreatedByID: &alice.ID, CreatedBy: &alice},
	}, nil)

	w := h.do(http.MethodGet, "/clients/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := decode[[]map[string]any](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme", items[0]["client_name"])
	assert.Equal(t, "alice", items[0]["created_by"])
	assert.NotContains(t, items[0], "projects")
}

func TestListClientsWithoutTrailingSlashRedirects(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/clients", nil)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/clients/", w.Header().Get("Location"))
}

func TestListClientsFailureHidesDetails(t *testing.T) {
	h := newHarness(t)
	h.m.Client.EXPECT().ListClients().Return(nil, errors.New("pq: connection refused"))

	w := h.do(http.MethodGet, "/clients/", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decode[response.ErrorResponse](t, w).Error)
}

func TestGetClient(t *testing.T) {
	h := newHarness(t)
	h.m.Client.EXPECT().GetClientByID(uint(1)).Return(client.Client{ID: 1, ClientName: "Acme"}, nil)
	h.m.Project.EXPECT().ListProjectsByClientID(uint(1)).Return([]project.Project{
		{ID: 2, ProjectName: "Website", ClientID: 1, ClientName: "Acme", CreatedBy: &alice, Users: []user.User{alice}},
	}, nil)

	w := h.do(http.MethodGet, "/clients/1/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]any](t, w)
	assert.Nil(t, body["created_by"])
	projects := body["projects"].([]any)
	require.Len(t, projects, 1)
	p := projects[0].(map[string]any)
	assert.Equal(t, "Website", p["project_name"])
	assert.Equal(t, "Acme", p["client"])
	assert.Equal(t, "alice", p["created_by"])
	assert.Equal(t, []any{map[string]any{"id": float64(1), "username": "alice"}}, p["assigned_users"])
}

func TestGetClientErrors(t *testing.T) {
	h := newHarness(t)
	h.m.Client.EXPECT().GetClientByID(uint(42)).Return(client.Client{}, gorm.ErrRecordNotFound)

	w := h.do(http.MethodGet, "/clients/42/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "client not found", decode[response.ErrorResponse](t, w).Error)

	w = h.do(http.MethodGet, "/clients/abc/", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid client id", decode[response.ErrorResponse](t, w).Error)
}

func TestWritesRequireAuthentication(t *testing.T) {
	h := newHarness(t)
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/clients/"},
		{http.MethodPut, "/clients/1/"},
		{http.MethodPatch, "/clients/1/"},
		{http.MethodDelete, "/clients/1/"},
		{http.MethodPost, "/clients/1/projects/"},
		{http.MethodGet, "/projects/"},
		{http.MethodGet, "/me/"},
		{http.MethodGet, "/audit/logs/"},
	} {
		w := h.do(tc.method, tc.path, map[string]any{"client_name": "X"})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestCreateClient(t *testing.T) {
	h := newHarness(t).login()
	h.m.Client.EXPECT().CreateClient(gomock.Any()).DoAndReturn(func(c *client.Client) error {
		c.ID = 10
		return nil
	})

	w := h.do(http.MethodPost, "/clients/", map[string]any{"client_name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decode[client.ClientDTO](t, w)
	assert.Equal(t, uint(10), body.ID)
	assert.Equal(t, "Acme", body.ClientName)
	require.NotNil(t, body.CreatedBy)
	assert.Equal(t, "alice", *body.CreatedBy)
}

func TestCreateClientValidation(t *testing.T) {
	h := newHarness(t).login()

	for _, payload := range []any{
		map[string]any{"client_name": ""},
		map[string]any{"client_name": "   "},
		map[string]any{},
		"",
	} {
		w := h.do(http.MethodPost, "/clients/", payload)
		require.Equal(t, http.StatusBadRequest, w.Code, "%v", payload)
		body := decode[response.ErrorResponse](t, w)
		assert.Equal(t, "validation failed", body.Error)
		assert.Contains(t, body.Fields, "client_name")
	}

	w := h.do(http.MethodPost, "/clients/", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateClient(t *testing.T) {
	existing := client.Client{ID: 1, ClientName: "Acme"}

	t.Run("put", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(1)).Return(existing, nil)
		h.m.Client.EXPECT().UpdateClient(gomock.Any()).Return(nil)
		h.m.Project.EXPECT().ListProjectsByClientID(uint(1)).Return(nil, nil)

		w := h.do(http.MethodPut, "/clients/1/", map[string]any{"client_name": "Acme Corp"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[map[string]any](t, w)
		assert.Equal(t, "Acme Corp", body["client_name"])
		assert.Equal(t, []any{}, body["projects"])
	})

	t.Run("put without name", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(1)).Return(existing, nil)

		w := h.do(http.MethodPut, "/clients/1/", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("patch without name", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(1)).Return(existing, nil)
		h.m.Project.EXPECT().ListProjectsByClientID(uint(1)).Return(nil, nil)

		w := h.do(http.MethodPatch, "/clients/1/", map[string]any{})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Acme", decode[map[string]any](t, w)["client_name"])
	})

	t.Run("patch blank name", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(1)).Return(existing, nil)

		w := h.do(http.MethodPatch, "/clients/1/", map[string]any{"client_name": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown client", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(9)).Return(client.Client{}, gorm.ErrRecordNotFound)

		w := h.do(http.MethodPut, "/clients/9/", map[string]any{"client_name": "X"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteClient(t *testing.T) {
	h := newHarness(t).login()
	h.m.Client.EXPECT().GetClientByID(uint(1)).Return(client.Client{ID: 1, ClientName: "Acme"}, nil)
	h.m.Client.EXPECT().DeleteClient(uint(1)).Return(nil)
	h.m.Client.EXPECT().GetClientByID(uint(1)).Return(client.Client{}, gorm.ErrRecordNotFound)

	w := h.do(http.MethodDelete, "/clients/1/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = h.do(http.MethodDelete, "/clients/1/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProject(t *testing.T) {
	acme := client.Client{ID: 1, ClientName: "Acme"}
	bob := user.User{ID: 2, Username: "bob"}

	t.Run("success", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)
		h.m.User.EXPECT().GetUsersByIDs([]uint{2}).Return([]user.User{bob}, nil)
		h.m.Project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.ID = 3
			return nil
		})
		h.m.Project.EXPECT().GetProjectByID(uint(3)).Return(project.Project{
			ID: 3, ProjectName: "Website", ClientID: 1, ClientName: "Acme",
			CreatedBy: &alice, Users: []user.User{bob},
		}, nil)

		w := h.do(http.MethodPost, "/clients/1/projects/", map[string]any{
			"project_name": "Website",
			"user_ids":     []uint{2, 2},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decode[project.ProjectDTO](t, w)
		assert.Equal(t, "Acme", body.Client)
		assert.Equal(t, []user.UserDTO{{ID: 2, Username: "bob"}}, body.AssignedUsers)
	})

	t.Run("unknown client", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(9)).Return(client.Client{}, gorm.ErrRecordNotFound)

		w := h.do(http.MethodPost, "/clients/9/projects/", map[string]any{"project_name": ""})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid user ids", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(1)).Return(acme, nil)
		h.m.User.EXPECT().GetUsersByIDs([]uint{9999}).Return([]user.User{}, nil)

		w := h.do(http.MethodPost, "/clients/1/projects/", map[string]any{
			"project_name": "Website",
			"user_ids":     []uint{9999},
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode[response.ErrorResponse](t, w)
		assert.True(t, strings.Contains(body.Fields["user_ids"], "9999"))
	})

	t.Run("user_ids of the wrong type", func(t *testing.T) {
		h := newHarness(t).login()

		w := h.do(http.MethodPost, "/clients/1/projects/", `{"project_name":"Website","user_ids":"abc"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListMyProjects(t *testing.T) {
	h := newHarness(t).login()
	h.m.Project.EXPECT().ListProjectsByUserID(alice.ID).Return([]project.Project{
		{ID: 1, ProjectName: "Website", ClientName: "Acme", Users: []user.User{alice}},
	}, nil)

	w := h.do(http.MethodGet, "/projects/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[[]project.ProjectDTO](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, "Website", items[0].ProjectName)
}

func TestObtainToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := alice
	stored.Password = string(hash)

	h := newHarness(t)
	h.m.User.EXPECT().GetUserByUsername("alice").Return(stored, nil).Times(2)
	h.m.User.EXPECT().GetUserByID(alice.ID).Return(alice, nil).AnyTimes()

	w := h.do(http.MethodPost, "/api-token-auth/", map[string]any{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(http.MethodPost, "/api-token-auth/", map[string]any{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[response.TokenResponse](t, w).Token
	require.NotEmpty(t, token)

	// The issued token is accepted under both schemes.
	for _, scheme := range []string{"Bearer", "Token"} {
		req := httptest.NewRequest(http.MethodGet, "/me/", nil)
		req.Header.Set("Authorization", scheme+" "+token)
		rec := httptest.NewRecorder()
		h.r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, scheme)
		assert.Equal(t, "alice", decode[user.UserDTO](t, rec).Username)
	}

	w = h.do(http.MethodPost, "/api-token-auth/", map[string]any{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister(t *testing.T) {
	h := newHarness(t)
	h.m.User.EXPECT().GetUserByUsername("bob").Return(user.User{}, gorm.ErrRecordNotFound)
	h.m.User.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		u.ID = 2
		return nil
	})
	h.m.User.EXPECT().GetUserByUsername("alice").Return(alice, nil)

	w := h.do(http.MethodPost, "/register/", map[string]any{"username": "bob", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, user.UserDTO{ID: 2, Username: "bob"}, decode[user.UserDTO](t, w))
	assert.NotContains(t, w.Body.String(), "password")

	w = h.do(http.MethodPost, "/register/", map[string]any{"username": "alice", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodPost, "/register/", map[string]any{"username": "al", "password": "1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[response.ErrorResponse](t, w)
	assert.Contains(t, body.Fields, "username")
	assert.Contains(t, body.Fields, "password")
}

func TestGetAuditLogs(t *testing.T) {
	h := newHarness(t).login()
	rt := "client"
	h.m.Audit.EXPECT().GetAuditLogs(repository.AuditQueryParams{ResourceType: &rt, Limit: 5, Offset: 0}).
		Return([]audit.AuditLog{{ID: 1, Action: audit.ActionCreate, ResourceType: "client"}}, nil)

	w := h.do(http.MethodGet, "/audit/logs/?resource_type=client&limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]audit.AuditLog](t, w), 1)

	w = h.do(http.MethodGet, "/audit/logs/?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/audit/logs/?user_id=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/audit/logs/?user_id=9223372036854775808", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAuditLogsByResource(t *testing.T) {
	h := newHarness(t).login()
	rt, rid := "client", "id=3"
	h.m.Audit.EXPECT().GetAuditLogs(repository.AuditQueryParams{ResourceType: &rt, ResourceID: &rid, Limit: 100}).
		Return([]audit.AuditLog{{ID: 4, Action: audit.ActionDelete, ResourceType: "client", ResourceID: "id=3"}}, nil)

	w := h.do(http.MethodGet, "/audit/logs/?resource_type=client&resource_id=id%3D3", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	logs := decode[[]audit.AuditLog](t, w)
	require.Len(t, logs, 1)
	assert.Equal(t, "id=3", logs[0].ResourceID)
}

func TestIDsBeyondKeyRange(t *testing.T) {
	const tooBig = "9223372036854775808"

	t.Run("client paths are not found", func(t *testing.T) {
		h := newHarness(t).login()
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
			w := h.do(method, "/clients/"+tooBig+"/", map[string]any{"client_name": "X"})
			assert.Equal(t, http.StatusNotFound, w.Code, method)
			assert.Equal(t, "client not found", decode[response.ErrorResponse](t, w).Error, method)
		}

		w := h.do(http.MethodPost, "/clients/"+tooBig+"/projects/", map[string]any{"project_name": "Website"})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = h.do(http.MethodGet, "/clients/18446744073709551616/", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("user ids are reported as invalid", func(t *testing.T) {
		h := newHarness(t).login()
		h.m.Client.EXPECT().GetClientByID(uint(1)).Return(client.Client{ID: 1, ClientName: "Acme"}, nil)
		h.m.User.EXPECT().GetUsersByIDs([]uint{2}).Return([]user.User{{ID: 2, Username: "bob"}}, nil)

		w := h.do(http.MethodPost, "/clients/1/projects/", `{"project_name":"Website","user_ids":[`+tooBig+`,2]}`)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		body := decode[response.ErrorResponse](t, w)
		assert.Equal(t, "Invalid user ids - object does not exist: "+tooBig, body.Fields["user_ids"])
	})
}

func TestRegisterLosesRaceForUsername(t *testing.T) {
	h := newHarness(t)
	h.m.User.EXPECT().GetUserByUsername("bob").Return(user.User{}, gorm.ErrRecordNotFound)
	h.m.User.EXPECT().CreateUser(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	w := h.do(http.MethodPost, "/register/", map[string]any{"username": "bob", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDatabaseOutageIsNotAnAuthFailure(t *testing.T) {
	h := newHarness(t)
	h.token = testutils.Token(t, h.cfg, alice.ID, alice.Username)
	h.m.User.EXPECT().GetUserByID(alice.ID).Return(user.User{}, errors.New("pq: connection refused"))

	w := h.do(http.MethodGet, "/me/", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decode[response.ErrorResponse](t, w).Error)
}
