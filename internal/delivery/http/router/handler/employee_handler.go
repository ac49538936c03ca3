// Package handler contains the HTTP handlers for the admin API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "brigade/internal/delivery/context"
	"brigade/internal/delivery/http/response"
	"brigade/internal/domain/entity"
	"brigade/internal/domain/service"
	"brigade/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmployeeHandler holds dependencies for employee-related handlers.
type EmployeeHandler struct {
	uc       usecase.EmployeeUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase, tokenSvc service.TokenService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// loginView is the login response body. The password digest never appears here.
type loginView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// employeeView is the serialized form of an employee record. The password
// field only ever carries the mask placeholder.
type employeeView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone"`
	Sex       string    `json:"sex"`
	IDNumber  string    `json:"idNumber"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// pageView is the serialized form of a page listing.
type pageView struct {
	Total   int64           `json:"total"`
	Records []*employeeView `json:"records"`
}

func toEmployeeView(employee *entity.Employee) *employeeView {
	return &employeeView{
		ID:        employee.ID,
		Username:  employee.Username,
		Name:      employee.Name,
		Password:  employee.Password,
		Phone:     employee.Phone,
		Sex:       employee.Sex,
		IDNumber:  employee.IDNumber,
		Status:    int(employee.Status),
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

// Login handles the employee login request and issues the admin access token.
func (h *EmployeeHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	employee, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.tokenSvc.GenerateToken(employee.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate access token")
	}

	return response.Success(c, http.StatusOK, loginView{
		ID:       employee.ID,
		Username: employee.Username,
		Name:     employee.Name,
		Token:    token,
	}, "Login successful")
}

// Create handles the account creation request.
func (h *EmployeeHandler) Create(c echo.Context) error {
	actorID, ok := deliverycontext.GetEmployeeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing employee ID in token")
	}

	var input usecase.CreateEmployeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Create(c.Request().Context(), actorID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Employee created")
}

// Page handles the paged listing request.
func (h *EmployeeHandler) Page(c echo.Context) error {
	var input usecase.PageQueryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid page query")
	}

	result, err := h.uc.PageQuery(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	records := make([]*employeeView, 0, len(result.Records))
	for _, record := range result.Records {
		records = append(records, toEmployeeView(record))
	}

	return response.Success(c, http.StatusOK, pageView{Total: result.Total, Records: records}, "")
}

// SetStatus handles the enable/disable toggle request.
func (h *EmployeeHandler) SetStatus(c echo.Context) error {
	actorID, ok := deliverycontext.GetEmployeeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing employee ID in token")
	}

	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status value")
	}

	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee id")
	}

	if err := h.uc.SetStatus(c.Request().Context(), actorID, id, entity.AccountStatus(status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee status updated")
}

// GetByID handles the lookup-by-id request.
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid employee id")
	}

	employee, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEmployeeView(employee), "")
}

// GetByIDNumber handles the lookup-by-national-ID request.
func (h *EmployeeHandler) GetByIDNumber(c echo.Context) error {
	idNumber := c.Param("idNumber")
	if idNumber == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid ID number")
	}

	employee, err := h.uc.GetByIDNumber(c.Request().Context(), idNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEmployeeView(employee), "")
}

// UpdateProfile handles the profile edit request.
func (h *EmployeeHandler) UpdateProfile(c echo.Context) error {
	actorID, ok := deliverycontext.GetEmployeeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing employee ID in token")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), actorID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee profile updated")
}

// ChangePassword handles the self-service password change request. The
// target account is always the authenticated actor.
func (h *EmployeeHandler) ChangePassword(c echo.Context) error {
	actorID, ok := deliverycontext.GetEmployeeID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Missing employee ID in token")
	}

	var input usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), actorID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
