package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "brigade/internal/delivery/context"
	"brigade/internal/delivery/http/validator"
	"brigade/internal/domain/entity"
	domainerrors "brigade/internal/domain/errors"
	mockRepo "brigade/internal/mocks/repository"
	mockSvc "brigade/internal/mocks/service"
	"brigade/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	handler      *EmployeeHandler
	employeeRepo *mockRepo.MockEmployeeRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenSvc     *mockSvc.MockTokenService
	echo         *echo.Echo
}

func createTestHandler(t *testing.T) handlerFixtures {
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := impl.NewEmployeeService(impl.EmployeeServiceParams{
		EmployeeRepo: employeeRepo,
		Hasher:       hasher,
		Logger:       logger,
	})

	e := echo.New()
	e.Validator = validator.New()

	return handlerFixtures{
		handler:      NewEmployeeHandler(service, tokenSvc, logger),
		employeeRepo: employeeRepo,
		hasher:       hasher,
		tokenSvc:     tokenSvc,
		echo:         e,
	}
}

func (f handlerFixtures) newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func TestEmployeeHandler_Login_Success(t *testing.T) {
	fx := createTestHandler(t)

	fx.employeeRepo.EXPECT().
		FindByUsername(mock.Anything, "zhangsan").
		Return(&entity.Employee{
			ID:       42,
			Username: "zhangsan",
			Name:     "Zhang San",
			Password: "stored-digest",
			Status:   entity.StatusEnabled,
		}, nil)
	fx.hasher.EXPECT().Check("123456", "stored-digest").Return(true)
	fx.tokenSvc.EXPECT().GenerateToken(int64(42)).Return("signed.jwt.token", nil)

	c, rec := fx.newJSONContext(http.MethodPost, "/admin/employee/login",
		`{"username":"zhangsan","password":"123456"}`)

	err := fx.handler.Login(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"token":"signed.jwt.token"`)
	assert.Contains(t, body, `"username":"zhangsan"`)

	// The stored digest never leaves the service, even on a successful login.
	assert.NotContains(t, body, "stored-digest")
}

func TestEmployeeHandler_Login_WrongPassword(t *testing.T) {
	fx := createTestHandler(t)

	fx.employeeRepo.EXPECT().
		FindByUsername(mock.Anything, "zhangsan").
		Return(&entity.Employee{
			ID:       42,
			Username: "zhangsan",
			Password: "stored-digest",
			Status:   entity.StatusEnabled,
		}, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-digest").Return(false)

	c, _ := fx.newJSONContext(http.MethodPost, "/admin/employee/login",
		`{"username":"zhangsan","password":"wrong"}`)

	err := fx.handler.Login(c)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordError))
}

func TestEmployeeHandler_Create_RequiresAuthenticatedActor(t *testing.T) {
	fx := createTestHandler(t)

	c, rec := fx.newJSONContext(http.MethodPost, "/admin/employee",
		`{"username":"lisi","name":"Li Si"}`)

	err := fx.handler.Create(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEmployeeHandler_Create_StampsActorFromContext(t *testing.T) {
	fx := createTestHandler(t)

	fx.hasher.EXPECT().Digest(entity.DefaultRawPassword).Return("default-digest")
	fx.employeeRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Employee")).
		Run(func(ctx context.Context, employee *entity.Employee) {
			assert.Equal(t, int64(7), employee.CreateUser)
			assert.Equal(t, entity.StatusEnabled, employee.Status)
		}).
		Return(nil)

	c, rec := fx.newJSONContext(http.MethodPost, "/admin/employee",
		`{"username":"lisi","name":"Li Si"}`)
	deliverycontext.SetEmployeeID(c, 7)

	err := fx.handler.Create(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestEmployeeHandler_GetByID_MasksPassword(t *testing.T) {
	fx := createTestHandler(t)

	fx.employeeRepo.EXPECT().
		FindByID(mock.Anything, int64(42)).
		Return(&entity.Employee{
			ID:       42,
			Username: "zhangsan",
			Password: "stored-digest",
			Status:   entity.StatusEnabled,
		}, nil)

	c, rec := fx.newJSONContext(http.MethodGet, "/admin/employee/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := fx.handler.GetByID(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"password":"****"`)
	assert.NotContains(t, rec.Body.String(), "stored-digest")
}

func TestEmployeeHandler_SetStatus_ParsesPathAndQuery(t *testing.T) {
	fx := createTestHandler(t)

	fx.employeeRepo.EXPECT().
		Update(mock.Anything, int64(42), mock.AnythingOfType("repository.EmployeePatch")).
		Return(nil)

	c, rec := fx.newJSONContext(http.MethodPost, "/admin/employee/status/0?id=42", "")
	c.SetParamNames("status")
	c.SetParamValues("0")
	deliverycontext.SetEmployeeID(c, 7)

	err := fx.handler.SetStatus(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEmployeeHandler_ChangePassword_TargetsActor(t *testing.T) {
	fx := createTestHandler(t)

	fx.employeeRepo.EXPECT().
		FindByID(mock.Anything, int64(7)).
		Return(&entity.Employee{ID: 7, Password: "stored-digest", Status: entity.StatusEnabled}, nil)
	fx.hasher.EXPECT().Check("old-raw", "stored-digest").Return(true)
	fx.hasher.EXPECT().Digest("new-raw").Return("new-digest")
	fx.employeeRepo.EXPECT().
		Update(mock.Anything, int64(7), mock.AnythingOfType("repository.EmployeePatch")).
		Return(nil)

	c, rec := fx.newJSONContext(http.MethodPut, "/admin/employee/editPassword",
		`{"oldPassword":"old-raw","newPassword":"new-raw"}`)
	deliverycontext.SetEmployeeID(c, 7)

	err := fx.handler.ChangePassword(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}
