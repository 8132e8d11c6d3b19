package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"

	"github.com/shopspring/decimal"
)

// AdminProductUsecaseは管理者向けの商品・在庫管理。
type AdminProductUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
	auditLogRepo  repo.AuditLogRepository
	logger        *slog.Logger
}

func NewAdminProductUsecase(
	productRepo repo.ProductRepository,
	inventoryRepo repo.InventoryRepository,
	auditLogRepo repo.AuditLogRepository,
	logger *slog.Logger,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		auditLogRepo:  auditLogRepo,
		logger:        logger,
	}
}

type ProductInput struct {
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Flavor      string          `json:"sabor"`
	Category    string          `json:"categoria"`
	Price       decimal.Decimal `json:"preco"`
	Stock       int64           `json:"estoque"`
	MinStock    int64           `json:"estoque_minimo"`
	IsActive    bool            `json:"ativo"`
	Featured    bool            `json:"destaque"`
	ImageURL    string          `json:"imagem_url"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "nome obrigatorio")
	}
	if !model.Flavor(in.Flavor).Valid() {
		return NewHTTPError(http.StatusBadRequest, "sabor invalido")
	}
	if !model.Category(in.Category).Valid() {
		return NewHTTPError(http.StatusBadRequest, "categoria invalida")
	}
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return NewHTTPError(http.StatusBadRequest, "preco invalido")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "estoque invalido")
	}
	if in.MinStock < 0 {
		return NewHTTPError(http.StatusBadRequest, "estoque_minimo invalido")
	}
	return nil
}

// 一覧（非公開も含む）。
func (u *AdminProductUsecase) ListAll(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// 在庫が下限を割っている商品の一覧。
func (u *AdminProductUsecase) ListLowStock(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *AdminProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Flavor:      model.Flavor(in.Flavor),
		Category:    model.Category(in.Category),
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		IsActive:    in.IsActive,
		Featured:    in.Featured,
		ImageURL:    in.ImageURL,
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *AdminProductUsecase) Update(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Flavor = model.Flavor(in.Flavor)
	p.Category = model.Category(in.Category)
	p.Price = in.Price
	p.Stock = in.Stock
	p.MinStock = in.MinStock
	p.IsActive = in.IsActive
	p.Featured = in.Featured
	p.ImageURL = in.ImageURL

	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 論理削除。注文済みの明細スナップショットは残る
func (u *AdminProductUsecase) Delete(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type UpdateInventoryInput struct {
	NewStock int64  `json:"estoque"`
	Reason   string `json:"motivo"`
}

// UpdateInventoryは在庫の手動調整。
// 調整履歴と監査ログを残す。
func (u *AdminProductUsecase) UpdateInventory(ctx context.Context, adminUserID int64, productID int64, in UpdateInventoryInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.NewStock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "estoque invalido")
	}
	if strings.TrimSpace(in.Reason) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "motivo obrigatorio")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	before := p.Stock

	if err := u.inventoryRepo.SetStock(ctx, productID, in.NewStock); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.inventoryRepo.CreateAdjustment(ctx, model.InventoryAdjustment{
		ProductID:   productID,
		AdminUserID: adminUserID,
		Delta:       in.NewStock - before,
		Reason:      strings.TrimSpace(in.Reason),
	})
	if err != nil {
		u.logger.Warn("inventory adjustment write failed", "error", err, "product_id", productID)
	}

	u.writeStockAudit(ctx, adminUserID, productID, before, in.NewStock)

	p.Stock = in.NewStock
	return p, nil
}

func (u *AdminProductUsecase) writeStockAudit(ctx context.Context, adminUserID int64, productID int64, before, after int64) {
	beforeJSON, _ := json.Marshal(map[string]int64{"stock": before})
	afterJSON, _ := json.Marshal(map[string]int64{"stock": after})

	err := u.auditLogRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateStock,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
	})
	if err != nil {
		u.logger.Warn("audit log write failed", "error", err, "product_id", productID)
	}
}
