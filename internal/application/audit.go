package application

import (
	"github.com/linskybing/clientdesk/internal/domain/audit"
	"github.com/linskybing/clientdesk/internal/repository"
)

const (
	DefaultAuditLimit = 100
	MaxAuditLimit     = 1000
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.Limit <= 0 {
		params.Limit = DefaultAuditLimit
	}
	if params.Limit > MaxAuditLimit {
		params.Limit = MaxAuditLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	return s.Repos.Audit.GetAuditLogs(params)
}

// CleanupOldLogs deletes entries older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}
