package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cookhub/backend/internal/models"
	"github.com/cookhub/backend/internal/repositories"
	"github.com/cookhub/backend/internal/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	e       *echo.Echo
	db      *gorm.DB
	users   *UserHandler
	auth    *AuthHandler
	follows *FollowHandler
	recipes *RecipeHandler
	reviews *ReviewHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Review{},
		&models.Follow{},
	))

	userRepo := repositories.NewGormUserRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	recipeRepo := repositories.NewGormRecipeRepository(db)
	reviewRepo := repositories.NewGormReviewRepository(db)

	e := echo.New()
	e.Validator = validators.New()

	return &testEnv{
		e:       e,
		db:      db,
		users:   NewUserHandler(userRepo, followRepo, recipeRepo),
		auth:    NewAuthHandler(userRepo, testJWTSecret),
		follows: NewFollowHandler(followRepo),
		recipes: NewRecipeHandler(recipeRepo),
		reviews: NewReviewHandler(reviewRepo, recipeRepo),
	}
}

// newContext builds an echo context carrying an optional JSON body and
// path params, plus the recorder capturing the response.
func (env *testEnv) newContext(t *testing.T, method string, body interface{}, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)

	require.Zero(t, len(params)%2, "params must be name/value pairs")
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func (env *testEnv) seedUser(t *testing.T, name, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{Name: name, Email: email, Password: string(hash)}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func withClaims(c echo.Context, userID uint, email string) {
	c.Set("user", &models.JwtCustomClaims{UserID: userID, Email: email})
}

// httpError unwraps the echo.HTTPError a handler returned on failure.
func httpError(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
