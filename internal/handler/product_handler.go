package handler

import (
	"net/http"
	"strconv"
	"strings"

	"fashionstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 1
	defaultPer  = 12
)

// /api/products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/products", h.list)
	api.GET("/products/:id", h.detail)
}

// list godoc
// @Summary      商品一覧
// @Tags         products
// @Produce      json
// @Param        q     query  string  false  "name keyword"
// @Param        cats  query  string  false  "category slugs (comma separated or repeated)"
// @Param        minK  query  int     false  "min price (thousand VND)"
// @Param        maxK  query  int     false  "max price (thousand VND)"
// @Param        sort  query  string  false  "price-asc | price-desc | name-asc | name-desc | default"
// @Param        page  query  int     false  "page (default 1)"
// @Param        per   query  int     false  "page size (default 12, max 100)"
// @Success      200  {object}  usecase.ProductListOutput
// @Failure      400  {object}  ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) list(c echo.Context) error {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil {
		return badRequest(c, "invalid page")
	}
	per, err := queryInt(c, "per", defaultPer)
	if err != nil {
		return badRequest(c, "invalid per")
	}

	minK, err := queryInt64Ptr(c, "minK")
	if err != nil {
		return badRequest(c, "invalid minK")
	}
	maxK, err := queryInt64Ptr(c, "maxK")
	if err != nil {
		return badRequest(c, "invalid maxK")
	}

	out, err := h.uc.ListPublicProducts(c.Request().Context(), usecase.ListProductsInput{
		Q:    c.QueryParam("q"),
		Cats: queryList(c, "cats"),
		MinK: minK,
		MaxK: maxK,
		Sort: c.QueryParam("sort"),
		Page: page,
		Per:  per,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// detail godoc
// @Summary      商品詳細（バリアント込み）
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "product id"
// @Success      200  {object}  usecase.ProductDetailOutput
// @Failure      404  {object}  ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return badRequest(c, "invalid id")
	}

	p, err := h.uc.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, p)
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func queryInt64Ptr(c echo.Context, name string) (*int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	x, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

// ?cats=a&cats=b と ?cats=a,b の両方を受ける
func queryList(c echo.Context, name string) []string {
	out := []string{}
	for _, raw := range c.QueryParams()[name] {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
