// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"brigade/internal/domain/entity"
	domainerrors "brigade/internal/domain/errors"
	"brigade/internal/domain/repository"
	"brigade/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeRepository implements the domain's EmployeeRepository interface using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
// It returns the repository as a repository.EmployeeRepository interface, adhering to dependency inversion.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

// FindByID retrieves a single employee by their store-assigned id.
func (repo *employeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return toEmployeeDomain(&employeeM), nil
}

// FindByUsername retrieves a single employee by their unique login name.
func (repo *employeeRepository) FindByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by username")
	}

	return toEmployeeDomain(&employeeM), nil
}

// FindByIDNumber retrieves a single employee by their national ID number.
func (repo *employeeRepository) FindByIDNumber(ctx context.Context, idNumber string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("id_number = ?", idNumber).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by ID number")
	}

	return toEmployeeDomain(&employeeM), nil
}

// Create persists a new employee record. PostgreSQL assigns the id and
// timestamps; constraint violations are translated to domain errors here.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmployeeAlreadyExists.WrapMessage("username or ID number already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEmployeeCreationFailed.WrapMessage("missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	// Reflect generated values back onto the entity.
	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// Update applies the non-nil fields of patch to the record with the given id.
// An absent id simply updates zero rows.
func (repo *employeeRepository) Update(ctx context.Context, id int64, patch repository.EmployeePatch) error {
	if patch.Empty() {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", id).
		Updates(patchColumns(patch)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmployeeAlreadyExists.WrapMessage("username or ID number already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEmployeeUpdateFailed.WrapMessage("missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update employee")
	}

	return nil
}

// PagedFind returns the records of the requested 1-based page ordered by
// creation time (newest first), plus the total count matching the filter.
// An out-of-range page yields an empty slice while the total stays accurate.
func (repo *employeeRepository) PagedFind(ctx context.Context, filter repository.EmployeeFilter, page, pageSize int) ([]*entity.Employee, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EmployeeModel{})

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", int(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count employees")
	}

	query = query.Order("created_at DESC")
	if pageSize > 0 {
		query = query.Limit(pageSize)
		if offset := (page - 1) * pageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	var employeeModels []*model.EmployeeModel
	if err := query.Find(&employeeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to page employees")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, total, nil
}

// patchColumns maps the non-nil patch fields onto the column set for a
// partial update. UpdateUser rides along with every patch.
func patchColumns(patch repository.EmployeePatch) map[string]any {
	columns := map[string]any{
		"update_user": patch.UpdateUser,
	}

	if patch.Username != nil {
		columns["username"] = *patch.Username
	}
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Phone != nil {
		columns["phone"] = *patch.Phone
	}
	if patch.Sex != nil {
		columns["sex"] = *patch.Sex
	}
	if patch.IDNumber != nil {
		columns["id_number"] = *patch.IDNumber
	}
	if patch.Password != nil {
		columns["password"] = *patch.Password
	}
	if patch.Status != nil {
		columns["status"] = int(*patch.Status)
	}

	return columns
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:         data.ID,
		Username:   data.Username,
		Name:       data.Name,
		Password:   data.Password,
		Phone:      data.Phone,
		Sex:        data.Sex,
		IDNumber:   data.IDNumber,
		Status:     entity.AccountStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		CreateUser: data.CreateUser,
		UpdateUser: data.UpdateUser,
	}
}

// fromEmployeeDomain converts a domain Employee entity to a GORM EmployeeModel for persistence.
func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:         data.ID,
		Username:   data.Username,
		Name:       data.Name,
		Password:   data.Password,
		Phone:      data.Phone,
		Sex:        data.Sex,
		IDNumber:   data.IDNumber,
		Status:     int(data.Status),
		CreateUser: data.CreateUser,
		UpdateUser: data.UpdateUser,
	}
}
