// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "brigade/internal/delivery/context"
	"brigade/internal/domain/entity"
	domainerrors "brigade/internal/domain/errors"
	"brigade/internal/domain/repository"
	"brigade/internal/domain/service"
	"brigade/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employeeRepo repository.EmployeeRepository
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// EmployeeServiceParams holds dependencies for employeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	EmployeeRepo repository.EmployeeRepository
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService. It receives all dependencies as interfaces.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	return &employeeService{
		employeeRepo: params.EmployeeRepo,
		hasher:       params.Hasher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates an employee by username and raw password.
//
// The password is checked before the account status, so a wrong password on a
// disabled account reports ErrPasswordError, not ErrAccountLocked. The
// returned record still carries the stored digest for internal use; the
// delivery layer owns keeping it out of responses.
func (srv *employeeService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Employee, error) {
	srv.log(ctx).Debug("Starting employee login", slog.String("username", input.Username))

	employee, err := srv.employeeRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			srv.log(ctx).Warn("Login failed, unknown username", slog.String("username", input.Username))

			return nil, domainerrors.ErrAccountNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find employee by username")
	}

	if !srv.hasher.Check(input.Password, employee.Password) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrPasswordError.WrapMessage("login failed")
	}

	if !employee.Enabled() {
		srv.log(ctx).Warn("Login failed, account disabled", slog.String("username", input.Username))

		return nil, domainerrors.ErrAccountLocked.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("Employee logged in", slog.Int64("employeeID", employee.ID))

	return employee, nil
}

// Create adds a new staff account. Status is forced to enabled and the
// password to the digest of the default constant, regardless of the input.
// Username uniqueness is not pre-checked here; a duplicate surfaces from the
// store layer as a constraint violation and is translated by the repository.
func (srv *employeeService) Create(ctx context.Context, actorID int64, input *usecase.CreateEmployeeInput) error {
	srv.log(ctx).Info("Creating employee account", slog.String("username", input.Username), slog.Int64("actorID", actorID))

	employee := &entity.Employee{
		Username:   input.Username,
		Name:       input.Name,
		Phone:      input.Phone,
		Sex:        input.Sex,
		IDNumber:   input.IDNumber,
		Status:     entity.StatusEnabled,
		Password:   srv.hasher.Digest(entity.DefaultRawPassword),
		CreateUser: actorID,
		UpdateUser: actorID,
	}

	if err := srv.employeeRepo.Create(ctx, employee); err != nil {
		srv.log(ctx).Error("Failed to create employee account", slog.String("username", input.Username), slog.Any("error", err))

		return errors.Wrap(err, "failed to create employee")
	}

	srv.log(ctx).Debug("Employee account created", slog.Int64("employeeID", employee.ID))

	return nil
}

// PageQuery lists accounts page by page. Page bounds are not validated here:
// an out-of-range page yields an empty slice while the true total is reported.
func (srv *employeeService) PageQuery(ctx context.Context, input *usecase.PageQueryInput) (*usecase.PageResult, error) {
	filter := repository.EmployeeFilter{
		Name:   input.Name,
		Status: input.Status,
	}

	records, total, err := srv.employeeRepo.PagedFind(ctx, filter, input.Page, input.PageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to page employees", slog.Int("page", input.Page), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to page employees")
	}

	for _, record := range records {
		record.Password = entity.PasswordMask
	}

	return &usecase.PageResult{Total: total, Records: records}, nil
}

// SetStatus flips the enable/disable switch of an account. No existence
// check: patching an absent id is a no-op at this layer.
func (srv *employeeService) SetStatus(ctx context.Context, actorID int64, id int64, status entity.AccountStatus) error {
	srv.log(ctx).Info("Setting employee status", slog.Int64("employeeID", id), slog.Int("status", int(status)), slog.Int64("actorID", actorID))

	patch := repository.EmployeePatch{
		Status:     &status,
		UpdateUser: actorID,
	}

	if err := srv.employeeRepo.Update(ctx, id, patch); err != nil {
		return errors.Wrap(err, "failed to update employee status")
	}

	return nil
}

// GetByID fetches one account, masking the password before returning it.
// Absence is propagated as ErrAccountNotFound.
func (srv *employeeService) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("employee lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	employee.Password = entity.PasswordMask

	return employee, nil
}

// GetByIDNumber fetches one account by national ID, masking the password.
func (srv *employeeService) GetByIDNumber(ctx context.Context, idNumber string) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindByIDNumber(ctx, idNumber)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("employee lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find employee by ID number")
	}

	employee.Password = entity.PasswordMask

	return employee, nil
}

// UpdateProfile edits non-identity fields of an account. Password and status
// are never touched by this path.
func (srv *employeeService) UpdateProfile(ctx context.Context, actorID int64, input *usecase.UpdateProfileInput) error {
	srv.log(ctx).Info("Updating employee profile", slog.Int64("employeeID", input.ID), slog.Int64("actorID", actorID))

	patch := repository.EmployeePatch{
		Username:   input.Username,
		Name:       input.Name,
		Phone:      input.Phone,
		Sex:        input.Sex,
		IDNumber:   input.IDNumber,
		UpdateUser: actorID,
	}

	if err := srv.employeeRepo.Update(ctx, input.ID, patch); err != nil {
		srv.log(ctx).Error("Failed to update employee profile", slog.Int64("employeeID", input.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update employee profile")
	}

	return nil
}

// ChangePassword changes the acting employee's own password. The target id
// comes from the authenticated actor, never from the request body.
func (srv *employeeService) ChangePassword(ctx context.Context, actorID int64, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing employee password", slog.Int64("employeeID", actorID))

	employee, err := srv.employeeRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("password change failed")
		}

		return errors.Wrap(err, "failed to find employee for password change")
	}

	if !srv.hasher.Check(input.OldPassword, employee.Password) {
		srv.log(ctx).Warn("Password change rejected, old password mismatch", slog.Int64("employeeID", actorID))

		return domainerrors.ErrOldPasswordMismatch.WrapMessage("password change failed")
	}

	if input.NewPassword == "" {
		return domainerrors.ErrEmptyNewPassword.WrapMessage("password change failed")
	}

	digest := srv.hasher.Digest(input.NewPassword)
	patch := repository.EmployeePatch{
		Password:   &digest,
		UpdateUser: actorID,
	}

	if err := srv.employeeRepo.Update(ctx, actorID, patch); err != nil {
		srv.log(ctx).Error("Failed to store new password", slog.Int64("employeeID", actorID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update employee password")
	}

	return nil
}
