package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/cache"
    "github.com/iliyamo/restaurant-table-reservation/internal/model"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// TableHandler exposes CRUD endpoints for restaurant tables.  The
// available-tables listing is served through the Redis cache; every
// write invalidates it.
type TableHandler struct {
    Tables *repository.TableRepo
    Cache  *cache.TableCache
}

// NewTableHandler constructs a TableHandler.  The cache may be nil.
func NewTableHandler(tables *repository.TableRepo, tableCache *cache.TableCache) *TableHandler {
    if tables == nil {
        panic("nil repository passed to NewTableHandler")
    }
    return &TableHandler{Tables: tables, Cache: tableCache}
}

type tableReq struct {
    Number   int    `json:"table_number"`
    Capacity int    `json:"capacity"`
    Status   string `json:"status"`
}

type tableResp struct {
    ID       uint64 `json:"id"`
    Number   int    `json:"table_number"`
    Capacity int    `json:"capacity"`
    Status   string `json:"status"`
}

func toTableResp(t *model.Table) tableResp {
    return tableResp{ID: t.ID, Number: t.Number, Capacity: t.Capacity, Status: t.Status}
}

// Create handles POST /v1/tables.  New tables default to available
// unless the operator says otherwise.
func (h *TableHandler) Create(c echo.Context) error {
    var req tableReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.Status == "" {
        req.Status = model.TableAvailable
    }
    t := model.Table{Number: req.Number, Capacity: req.Capacity, Status: req.Status}
    if ok, msg := t.Validate(); !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    ctx := c.Request().Context()
    if _, err := h.Tables.Create(ctx, &t); err != nil {
        if errors.Is(err, repository.ErrTableNumberExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "table number already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create table"})
    }
    h.Cache.Invalidate(ctx)
    return c.JSON(http.StatusCreated, toTableResp(&t))
}

// List handles GET /v1/tables with an optional ?status= filter.  The
// available listing is the hot path at the front desk, so it goes
// through the cache.
func (h *TableHandler) List(c echo.Context) error {
    status := c.QueryParam("status")
    if status != "" && !model.ValidTableStatus(status) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be one of: available, occupied, reserved"})
    }
    ctx := c.Request().Context()
    if status == model.TableAvailable {
        if tables, hit := h.Cache.GetAvailable(ctx); hit {
            return c.JSON(http.StatusOK, echo.Map{"items": toTableResps(tables)})
        }
    }
    tables, err := h.Tables.List(ctx, status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load tables"})
    }
    if status == model.TableAvailable {
        h.Cache.SetAvailable(ctx, tables)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": toTableResps(tables)})
}

func toTableResps(tables []model.Table) []tableResp {
    items := make([]tableResp, 0, len(tables))
    for i := range tables {
        items = append(items, toTableResp(&tables[i]))
    }
    return items
}

// Get handles GET /v1/tables/:id.
func (h *TableHandler) Get(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
    }
    t, err := h.Tables.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrTableNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch table"})
    }
    return c.JSON(http.StatusOK, toTableResp(t))
}

// Update handles PUT /v1/tables/:id.  Writing status here is the
// explicit operator override; normal status changes happen inside
// booking transitions.
func (h *TableHandler) Update(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
    }
    var req tableReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    t := model.Table{ID: id, Number: req.Number, Capacity: req.Capacity, Status: req.Status}
    if ok, msg := t.Validate(); !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    ctx := c.Request().Context()
    if _, err := h.Tables.GetByID(ctx, id); err != nil {
        if errors.Is(err, repository.ErrTableNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch table"})
    }
    if err := h.Tables.Update(ctx, &t); err != nil {
        if errors.Is(err, repository.ErrTableNumberExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "table number already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update table"})
    }
    h.Cache.Invalidate(ctx)
    return c.JSON(http.StatusOK, toTableResp(&t))
}

// Delete handles DELETE /v1/tables/:id.  Dependent bookings are removed
// by the database cascade.
func (h *TableHandler) Delete(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
    }
    ctx := c.Request().Context()
    if _, err := h.Tables.GetByID(ctx, id); err != nil {
        if errors.Is(err, repository.ErrTableNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch table"})
    }
    if err := h.Tables.Delete(ctx, id); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete table"})
    }
    h.Cache.Invalidate(ctx)
    return c.NoContent(http.StatusNoContent)
}
