package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"cupcakes/internal/config"
	"cupcakes/internal/infra/storage"
	"cupcakes/internal/middleware"
	"cupcakes/internal/repository"

	"github.com/labstack/echo/v4"
)

// 画像アップロードの上限（5MB）
const maxUploadSize = 5 << 20

// 許可する拡張子
var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// /uploads のHTTP（管理者のみ）
type UploadHandler struct {
	store storage.FileStore
}

// DI
func NewUploadHandler(store storage.FileStore) *UploadHandler {
	return &UploadHandler{store: store}
}

type UploadResponse struct {
	URL string `json:"url"`
}

func (h *UploadHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/uploads")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.upload)
}

func (h *UploadHandler) upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file obrigatorio"})
	}

	if fh.Size > maxUploadSize {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "arquivo muito grande"})
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "formato nao suportado"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	defer src.Close()

	url, err := h.store.Save(fh.Filename, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusCreated, UploadResponse{URL: url})
}
