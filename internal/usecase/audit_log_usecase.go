package usecase

import (
	"context"
	"net/http"

	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"
)

// AuditLogUsecaseは監査ログの参照。
type AuditLogUsecase struct {
	auditLogRepo repo.AuditLogRepository
}

func NewAuditLogUsecase(auditLogRepo repo.AuditLogRepository) *AuditLogUsecase {
	return &AuditLogUsecase{auditLogRepo: auditLogRepo}
}

type AuditLogListInput struct {
	Action       string
	ResourceType string
	Limit        int
	Offset       int
}

func (u *AuditLogUsecase) List(ctx context.Context, in AuditLogListInput) ([]model.AuditLog, error) {
	if in.Limit < 1 || in.Limit > 200 {
		in.Limit = 50
	}
	if in.Offset < 0 {
		in.Offset = 0
	}

	f := repo.AuditLogFilter{
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	if in.Action != "" {
		a := model.AuditAction(in.Action)
		f.Action = &a
	}
	if in.ResourceType != "" {
		rt := model.AuditResourceType(in.ResourceType)
		f.ResourceType = &rt
	}

	logs, err := u.auditLogRepo.List(ctx, f)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}
