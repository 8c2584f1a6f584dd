package testutils

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/clientdesk/internal/api/middleware"
	"github.com/linskybing/clientdesk/internal/api/routes"
	"github.com/linskybing/clientdesk/internal/config"
	"github.com/linskybing/clientdesk/internal/repository"
	"github.com/linskybing/clientdesk/internal/repository/mock"
	"github.com/linskybing/clientdesk/pkg/utils"
)

// Mocks holds the repository doubles behind a router built by SetupRouter.
type Mocks struct {
	Client  *mock.MockClientRepo
	Project *mock.MockProjectRepo
	User    *mock.MockUserRepo
	Audit   *mock.MockAuditRepo
}

func (m *Mocks) Repos() *repository.Repos {
	return &repository.Repos{
		Client:  m.Client,
		Project: m.Project,
		User:    m.User,
		Audit:   m.Audit,
	}
}

func NewMocks(t *testing.T) *Mocks {
	ctrl := gomock.NewController(t)
	return &Mocks{
		Client:  mock.NewMockClientRepo(ctrl),
		Project: mock.NewMockProjectRepo(ctrl),
		User:    mock.NewMockUserRepo(ctrl),
		Audit:   mock.NewMockAuditRepo(ctrl),
	}
}

func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.JwtSecret = "test-secret"
	cfg.Issuer = "clientdesk-test"
	cfg.TokenTTL = time.Hour
	return cfg
}

// SetupRouter returns the full router over mocked repositories. Audit writes
// are disabled for the duration of the test.
func SetupRouter(t *testing.T) (*gin.Engine, *Mocks, *config.Config) {
	gin.SetMode(gin.TestMode)
	SilenceAudit(t)

	m := NewMocks(t)
	cfg := TestConfig()
	r, _ := routes.NewRouter(cfg, m.Repos(), nil)
	return r, m, cfg
}

// Token signs a token the router built from cfg accepts.
func Token(t *testing.T, cfg *config.Config, userID uint, username string) string {
	t.Helper()
	token, err := middleware.NewJWT(cfg, nil).GenerateToken(userID, username)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// SilenceAudit swaps the async audit writer for a no-op until the test ends.
func SilenceAudit(t *testing.T) {
	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })
}
