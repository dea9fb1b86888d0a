package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

// CustomerHandler exposes CRUD endpoints for restaurant guests.
type CustomerHandler struct {
    Customers *repository.CustomerRepo
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(customers *repository.CustomerRepo) *CustomerHandler {
    if customers == nil {
        panic("nil repository passed to NewCustomerHandler")
    }
    return &CustomerHandler{Customers: customers}
}

type customerReq struct {
    Name  string `json:"name"`
    Phone string `json:"phone"`
    Email string `json:"email"`
}

type customerResp struct {
    ID    uint64 `json:"id"`
    Name  string `json:"name"`
    Phone string `json:"phone"`
    Email string `json:"email,omitempty"`
}

func toCustomerResp(c *model.Customer) customerResp {
    return customerResp{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email}
}

// Create handles POST /v1/customers.  The body is validated with the
// customer rules; the first failing rule's message comes back as a 400.
func (h *CustomerHandler) Create(c echo.Context) error {
    var req customerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    cust := model.Customer{Name: req.Name, Phone: req.Phone, Email: req.Email}
    if ok, msg := cust.Validate(); !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    if _, err := h.Customers.Create(c.Request().Context(), &cust); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create customer"})
    }
    return c.JSON(http.StatusCreated, toCustomerResp(&cust))
}

// List handles GET /v1/customers.
func (h *CustomerHandler) List(c echo.Context) error {
    customers, err := h.Customers.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load customers"})
    }
    items := make([]customerResp, 0, len(customers))
    for i := range customers {
        items = append(items, toCustomerResp(&customers[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
    }
    cust, err := h.Customers.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrCustomerNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch customer"})
    }
    return c.JSON(http.StatusOK, toCustomerResp(cust))
}

// Update handles PUT /v1/customers/:id.  The full record is replaced
// after validation, mirroring Create.
func (h *CustomerHandler) Update(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
    }
    var req customerReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    cust := model.Customer{ID: id, Name: req.Name, Phone: req.Phone, Email: req.Email}
    if ok, msg := cust.Validate(); !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    ctx := c.Request().Context()
    if _, err := h.Customers.GetByID(ctx, id); err != nil {
        if errors.Is(err, repository.ErrCustomerNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch customer"})
    }
    if err := h.Customers.Update(ctx, &cust); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update customer"})
    }
    return c.JSON(http.StatusOK, toCustomerResp(&cust))
}

// Delete handles DELETE /v1/customers/:id.  The customer's bookings are
// removed by the database cascade.
func (h *CustomerHandler) Delete(c echo.Context) error {
    id, ok := pathID(c)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer id"})
    }
    ctx := c.Request().Context()
    if _, err := h.Customers.GetByID(ctx, id); err != nil {
        if errors.Is(err, repository.ErrCustomerNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch customer"})
    }
    if err := h.Customers.Delete(ctx, id); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete customer"})
    }
    return c.NoContent(http.StatusNoContent)
}
