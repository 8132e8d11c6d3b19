package handler

import (
	"net/http"
	"strconv"

	"cupcakes/internal/config"
	"cupcakes/internal/middleware"
	"cupcakes/internal/repository"
	"cupcakes/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /products の公開API（レビュー投稿だけ認証つき）
type ProductHandler struct {
	catalogUC *usecase.CatalogUsecase
	reviewUC  *usecase.ReviewUsecase
}

// DI
func NewProductHandler(catalogUC *usecase.CatalogUsecase, reviewUC *usecase.ReviewUsecase) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, reviewUC: reviewUC}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	e.GET("/products", h.list)
	e.GET("/products/featured", h.featured)
	e.GET("/products/:id", h.detail)
	e.GET("/products/:id/reviews", h.listReviews)

	g := e.Group("/products")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))
	g.POST("/:id/reviews", h.createReview)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.catalogUC.ListProducts(c.Request().Context(), usecase.ListCatalogInput{
		Search:   c.QueryParam("q"),
		Flavor:   c.QueryParam("sabor"),
		Category: c.QueryParam("categoria"),
		SortBy:   c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) featured(c echo.Context) error {
	out, err := h.catalogUC.FeaturedProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.catalogUC.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) listReviews(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.catalogUC.ListProductReviews(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) createReview(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.CreateReviewInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.reviewUC.Create(c.Request().Context(), userID, id, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
