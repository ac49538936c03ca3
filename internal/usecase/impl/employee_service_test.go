package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"brigade/internal/domain/entity"
	domainerrors "brigade/internal/domain/errors"
	"brigade/internal/domain/repository"
	mockRepo "brigade/internal/mocks/repository"
	mockSvc "brigade/internal/mocks/service"
	"brigade/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// employeeServiceFixtures holds all test dependencies for employee service tests.
type employeeServiceFixtures struct {
	service      usecase.EmployeeUsecase
	employeeRepo *mockRepo.MockEmployeeRepository
	hasher       *mockSvc.MockPasswordHasher
}

func createTestEmployeeService(t *testing.T) employeeServiceFixtures {
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewEmployeeService(EmployeeServiceParams{
		EmployeeRepo: employeeRepo,
		Hasher:       hasher,
		Logger:       logger,
	})

	return employeeServiceFixtures{
		service:      service,
		employeeRepo: employeeRepo,
		hasher:       hasher,
	}
}

func enabledEmployee() *entity.Employee {
	return &entity.Employee{
		ID:       42,
		Username: "zhangsan",
		Name:     "Zhang San",
		Password: "stored-digest",
		Status:   entity.StatusEnabled,
	}
}

func TestEmployeeService_Login_Success(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	employee := enabledEmployee()

	fx.employeeRepo.EXPECT().FindByUsername(ctx, "zhangsan").Return(employee, nil)
	fx.hasher.EXPECT().Check("123456", "stored-digest").Return(true)

	got, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "zhangsan", Password: "123456"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "zhangsan", got.Username)
}

func TestEmployeeService_Login_UnknownUsername(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().
		FindByUsername(ctx, "nobody").
		Return(nil, repository.ErrEmployeeNotFound)

	got, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "123456"})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestEmployeeService_Login_WrongPassword(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().FindByUsername(ctx, "zhangsan").Return(enabledEmployee(), nil)
	fx.hasher.EXPECT().Check("wrong", "stored-digest").Return(false)

	got, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "zhangsan", Password: "wrong"})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordError))
}

func TestEmployeeService_Login_DisabledAccount(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	employee := enabledEmployee()
	employee.Status = entity.StatusDisabled

	fx.employeeRepo.EXPECT().FindByUsername(ctx, "zhangsan").Return(employee, nil)
	fx.hasher.EXPECT().Check("123456", "stored-digest").Return(true)

	got, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "zhangsan", Password: "123456"})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountLocked))
}

// A wrong password on a disabled account is reported as a password error, not
// a locked account: the password check happens before the status check.
func TestEmployeeService_Login_WrongPasswordOnDisabledAccount(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	employee := enabledEmployee()
	employee.Status = entity.StatusDisabled

	fx.employeeRepo.EXPECT().FindByUsername(ctx, "zhangsan").Return(employee, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-digest").Return(false)

	got, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "zhangsan", Password: "wrong"})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordError))
	assert.False(t, errors.Is(err, domainerrors.ErrAccountLocked))
}

func TestEmployeeService_Create_ForcesDefaultsAndStampsActor(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Digest(entity.DefaultRawPassword).Return("default-digest")

	var created *entity.Employee
	fx.employeeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Employee")).
		Run(func(ctx context.Context, employee *entity.Employee) {
			created = employee
			employee.ID = 7
		}).
		Return(nil)

	err := fx.service.Create(ctx, 1, &usecase.CreateEmployeeInput{
		Username: "lisi",
		Name:     "Li Si",
		Phone:    "13800000000",
		Sex:      "1",
		IDNumber: "110101199003070000",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.StatusEnabled, created.Status)
	assert.Equal(t, "default-digest", created.Password)
	assert.Equal(t, int64(1), created.CreateUser)
	assert.Equal(t, int64(1), created.UpdateUser)
}

func TestEmployeeService_Create_DuplicateUsername(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Digest(entity.DefaultRawPassword).Return("default-digest")
	fx.employeeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Employee")).
		Return(domainerrors.ErrEmployeeAlreadyExists.WrapMessage("duplicate username"))

	err := fx.service.Create(ctx, 1, &usecase.CreateEmployeeInput{Username: "lisi", Name: "Li Si"})

	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeAlreadyExists))
}

func TestEmployeeService_PageQuery_MasksPasswords(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	records := []*entity.Employee{
		{ID: 1, Username: "a", Password: "digest-a"},
		{ID: 2, Username: "b", Password: "digest-b"},
	}

	fx.employeeRepo.EXPECT().
		PagedFind(ctx, repository.EmployeeFilter{Name: "zhang"}, 1, 10).
		Return(records, int64(25), nil)

	result, err := fx.service.PageQuery(ctx, &usecase.PageQueryInput{Page: 1, PageSize: 10, Name: "zhang"})

	require.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
	require.Len(t, result.Records, 2)
	for _, record := range result.Records {
		assert.Equal(t, entity.PasswordMask, record.Password)
	}
}

// An out-of-range page yields no records while the total still reflects every
// matching row.
func TestEmployeeService_PageQuery_EmptyPageKeepsTotal(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().
		PagedFind(ctx, repository.EmployeeFilter{}, 5, 10).
		Return([]*entity.Employee{}, int64(25), nil)

	result, err := fx.service.PageQuery(ctx, &usecase.PageQueryInput{Page: 5, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
	assert.Empty(t, result.Records)
}

func TestEmployeeService_SetStatus(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().
		Update(ctx, int64(42), mock.AnythingOfType("repository.EmployeePatch")).
		Run(func(ctx context.Context, id int64, patch repository.EmployeePatch) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, entity.StatusDisabled, *patch.Status)
			assert.Equal(t, int64(1), patch.UpdateUser)
			assert.Nil(t, patch.Password)
		}).
		Return(nil)

	err := fx.service.SetStatus(ctx, 1, 42, entity.StatusDisabled)

	require.NoError(t, err)
}

func TestEmployeeService_GetByID_MasksPassword(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().FindByID(ctx, int64(42)).Return(enabledEmployee(), nil)

	got, err := fx.service.GetByID(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, entity.PasswordMask, got.Password)
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrEmployeeNotFound)

	got, err := fx.service.GetByID(ctx, 99)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestEmployeeService_GetByIDNumber_MasksPassword(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	employee := enabledEmployee()
	employee.IDNumber = "110101199003070000"

	fx.employeeRepo.EXPECT().FindByIDNumber(ctx, "110101199003070000").Return(employee, nil)

	got, err := fx.service.GetByIDNumber(ctx, "110101199003070000")

	require.NoError(t, err)
	assert.Equal(t, entity.PasswordMask, got.Password)
	assert.Equal(t, "110101199003070000", got.IDNumber)
}

func TestEmployeeService_GetByIDNumber_NotFound(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().FindByIDNumber(ctx, "000000000000000000").Return(nil, repository.ErrEmployeeNotFound)

	got, err := fx.service.GetByIDNumber(ctx, "000000000000000000")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestEmployeeService_UpdateProfile_NeverTouchesPasswordOrStatus(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	newName := "Wang Wu"
	newPhone := "13900000000"

	fx.employeeRepo.EXPECT().
		Update(ctx, int64(42), mock.AnythingOfType("repository.EmployeePatch")).
		Run(func(ctx context.Context, id int64, patch repository.EmployeePatch) {
			require.NotNil(t, patch.Name)
			assert.Equal(t, "Wang Wu", *patch.Name)
			require.NotNil(t, patch.Phone)
			assert.Equal(t, "13900000000", *patch.Phone)
			assert.Nil(t, patch.Username)
			assert.Nil(t, patch.Password)
			assert.Nil(t, patch.Status)
			assert.Equal(t, int64(1), patch.UpdateUser)
		}).
		Return(nil)

	err := fx.service.UpdateProfile(ctx, 1, &usecase.UpdateProfileInput{
		ID:    42,
		Name:  &newName,
		Phone: &newPhone,
	})

	require.NoError(t, err)
}

func TestEmployeeService_ChangePassword_Success(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().FindByID(ctx, int64(42)).Return(enabledEmployee(), nil)
	fx.hasher.EXPECT().Check("old-raw", "stored-digest").Return(true)
	fx.hasher.EXPECT().Digest("new-raw").Return("new-digest")

	fx.employeeRepo.EXPECT().
		Update(ctx, int64(42), mock.AnythingOfType("repository.EmployeePatch")).
		Run(func(ctx context.Context, id int64, patch repository.EmployeePatch) {
			require.NotNil(t, patch.Password)
			assert.Equal(t, "new-digest", *patch.Password)
			assert.Equal(t, int64(42), patch.UpdateUser)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, 42, &usecase.ChangePasswordInput{
		OldPassword: "old-raw",
		NewPassword: "new-raw",
	})

	require.NoError(t, err)
}

// A wrong old password rejects the change before anything is written.
func TestEmployeeService_ChangePassword_OldPasswordMismatch(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().FindByID(ctx, int64(42)).Return(enabledEmployee(), nil)
	fx.hasher.EXPECT().Check("wrong-old", "stored-digest").Return(false)

	err := fx.service.ChangePassword(ctx, 42, &usecase.ChangePasswordInput{
		OldPassword: "wrong-old",
		NewPassword: "new-raw",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrOldPasswordMismatch))
	fx.employeeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_ChangePassword_EmptyNewPassword(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().FindByID(ctx, int64(42)).Return(enabledEmployee(), nil)
	fx.hasher.EXPECT().Check("old-raw", "stored-digest").Return(true)

	err := fx.service.ChangePassword(ctx, 42, &usecase.ChangePasswordInput{
		OldPassword: "old-raw",
		NewPassword: "",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrEmptyNewPassword))
	fx.employeeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_ChangePassword_ActorGone(t *testing.T) {
	fx := createTestEmployeeService(t)
	ctx := context.Background()

	fx.employeeRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrEmployeeNotFound)

	err := fx.service.ChangePassword(ctx, 42, &usecase.ChangePasswordInput{
		OldPassword: "old-raw",
		NewPassword: "new-raw",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
