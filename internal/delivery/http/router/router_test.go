package router

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"foodies/config"
	"foodies/internal/delivery/http/middleware"
	"foodies/internal/delivery/http/response"
	"foodies/internal/delivery/http/router/handler"
	"foodies/internal/delivery/http/validator"
	"foodies/internal/domain/entity"
	domainerrors "foodies/internal/domain/errors"
	mockUsecase "foodies/internal/mocks/usecase"
	"foodies/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const accessToken = "access-token"

type apiFixture struct {
	e              *echo.Echo
	caller         *entity.User
	userUC         *mockUsecase.MockUserUsecase
	sessionUC      *mockUsecase.MockSessionUsecase
	relationshipUC *mockUsecase.MockRelationshipUsecase
	recipeUC       *mockUsecase.MockRecipeUsecase
	catalogUC      *mockUsecase.MockCatalogUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	logger := slog.New(slog.DiscardHandler)
	f := &apiFixture{
		caller:         &entity.User{ID: uuid.New(), Name: "alice", Email: "alice@example.com"},
		userUC:         mockUsecase.NewMockUserUsecase(t),
		sessionUC:      mockUsecase.NewMockSessionUsecase(t),
		relationshipUC: mockUsecase.NewMockRelationshipUsecase(t),
		recipeUC:       mockUsecase.NewMockRecipeUsecase(t),
		catalogUC:      mockUsecase.NewMockCatalogUsecase(t),
	}
	f.sessionUC.EXPECT().Resolve(mock.Anything, accessToken).Return(f.caller, nil).Maybe()
	f.sessionUC.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUnauthenticated).Maybe()

	f.e = echo.New()
	f.e.Validator = validator.New()
	f.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			UserUC: f.userUC, SessionUC: f.sessionUC, Logger: logger,
		}),
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: f.userUC, RelationshipUC: f.relationshipUC, Logger: logger,
		}),
		RecipeHandler: handler.NewRecipeHandler(handler.RecipeHandlerParams{
			RecipeUC: f.recipeUC, RelationshipUC: f.relationshipUC, Logger: logger,
		}),
		CatalogHandler: handler.NewCatalogHandler(f.catalogUC),
		AuthMiddleware: middleware.NewAuthMiddleware(f.sessionUC),
		RateLimiter:    middleware.NewRateLimitMiddleware(&config.Config{RateLimit: &config.RateLimitConfig{Enabled: false}}),
	}).RegisterRoutes(f.e)

	return f
}

func (f *apiFixture) do(method, target string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAuthRoutes(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().
			RegisterUser(mock.Anything, &usecase.RegisterUserInput{Name: "bob", Email: "bob@example.com", Password: "secret1"}).
			Return(&entity.User{ID: uuid.New(), Name: "bob", Email: "bob@example.com", PasswordHash: "$2a$hash"}, nil)

		rec := f.do(http.MethodPost, "/api/auth/register", map[string]string{
			"name": "bob", "email": "bob@example.com", "password": "secret1",
		}, false)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "$2a$hash")
	})

	t.Run("register validation", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "bob", "email": "not-an-email"}, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Details, "email must be a valid email")
	})

	t.Run("register blank name", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/register", map[string]string{
			"name": "   ", "email": "bob@example.com", "password": "secret1",
		}, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "name must not be blank")
	})

	t.Run("register multibyte password over bcrypt limit", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/register", map[string]string{
			"name": "bob", "email": "bob@example.com", "password": strings.Repeat("é", 72),
		}, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "password must be at most 72 bytes")
	})

	t.Run("register conflict", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, errors.Wrap(domainerrors.ErrEmailTaken, "register"))

		rec := f.do(http.MethodPost, "/api/auth/register", map[string]string{
			"name": "bob", "email": "bob@example.com", "password": "secret1",
		}, false)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "EMAIL_TAKEN", decode(t, rec).Error.Code)
	})

	t.Run("login", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Name: "bob", Password: "secret1"}).
			Return(&usecase.TokenOutput{AccessToken: "a", RefreshToken: "r", TokenType: usecase.TokenTypeBearer}, nil)

		rec := f.do(http.MethodPost, "/api/auth/login", map[string]string{"name": "bob", "password": "secret1"}, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	})

	t.Run("refresh from body", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sessionUC.EXPECT().RefreshToken(mock.Anything, "r1").Return(&usecase.TokenOutput{AccessToken: "a2", RefreshToken: "r1"}, nil)

		rec := f.do(http.MethodPost, "/api/auth/refresh-token", map[string]string{"refresh_token": "r1"}, false)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("refresh missing", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/auth/refresh-token", nil, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_REFRESH_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("logout with bearer", func(t *testing.T) {
		f := newAPIFixture(t)
		f.sessionUC.EXPECT().Logout(mock.Anything, "r1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer r1")
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserRoutes(t *testing.T) {
	t.Run("me requires auth", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/users/me", nil, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("me", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().GetProfile(mock.Anything, f.caller.ID).
			Return(&entity.UserProfile{User: f.caller, FollowersCount: 2}, nil)

		rec := f.do(http.MethodGet, "/api/users/me", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"followers_count":2`)
	})

	t.Run("update me", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().
			UpdateProfile(mock.Anything, f.caller, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
				return in.Name != nil && *in.Name == "alicia" && in.Email == nil
			})).
			Return(&entity.User{ID: f.caller.ID, Name: "alicia"}, nil)

		rec := f.do(http.MethodPatch, "/api/users/me", map[string]string{"name": "alicia"}, true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("avatar upload", func(t *testing.T) {
		f := newAPIFixture(t)
		f.userUC.EXPECT().
			UpdateAvatar(mock.Anything, f.caller, mock.MatchedBy(func(in *usecase.UploadInput) bool {
				return in.Filename == "me.png" && in.ContentType == "image/png" && in.Size == 3
			})).
			Return(&entity.User{ID: f.caller.ID, Avatar: "https://cdn/avatars/x.png"}, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="avatar"; filename="me.png"`)
		h.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, _ = part.Write([]byte("png"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPatch, "/api/users/me/avatar", &buf)
		req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://cdn/avatars/x.png")
	})

	t.Run("avatar missing file", func(t *testing.T) {
		f := newAPIFixture(t)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("other", "x"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPatch, "/api/users/me/avatar", &buf)
		req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("follow self", func(t *testing.T) {
		f := newAPIFixture(t)
		f.relationshipUC.EXPECT().Follow(mock.Anything, f.caller.ID, f.caller.ID).
			Return(errors.Wrap(domainerrors.ErrSelfFollow, "follow"))

		rec := f.do(http.MethodPost, "/api/users/"+f.caller.ID.String()+"/follow", nil, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "SELF_FOLLOW", decode(t, rec).Error.Code)
	})

	t.Run("unfollow not following", func(t *testing.T) {
		f := newAPIFixture(t)
		target := uuid.New()
		f.relationshipUC.EXPECT().Unfollow(mock.Anything, f.caller.ID, target).Return(false, nil)

		rec := f.do(http.MethodDelete, "/api/users/"+target.String()+"/follow", nil, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOLLOWING", decode(t, rec).Error.Code)
	})

	t.Run("unfollow alias", func(t *testing.T) {
		f := newAPIFixture(t)
		target := uuid.New()
		f.relationshipUC.EXPECT().Unfollow(mock.Anything, f.caller.ID, target).Return(true, nil)

		rec := f.do(http.MethodDelete, "/api/users/"+target.String()+"/unfollow", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("update me blank name", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPatch, "/api/users/me", map[string]string{"name": " "}, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("followers of user with paging", func(t *testing.T) {
		f := newAPIFixture(t)
		target := uuid.New()
		f.relationshipUC.EXPECT().ListFollowers(mock.Anything, target, entity.Page{Skip: 5, Limit: 100}).
			Return([]*entity.User{{ID: uuid.New(), Name: "carol"}}, nil)

		rec := f.do(http.MethodGet, "/api/users/"+target.String()+"/followers?skip=5&limit=500", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"skip":5`)
		assert.Contains(t, rec.Body.String(), "carol")
	})

	t.Run("my following empty", func(t *testing.T) {
		f := newAPIFixture(t)
		f.relationshipUC.EXPECT().ListFollowing(mock.Anything, f.caller.ID, entity.Page{Skip: 0, Limit: 100}).Return(nil, nil)

		rec := f.do(http.MethodGet, "/api/users/me/following", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"items":[]`)
	})

	t.Run("bad id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/users/not-a-uuid", nil, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative skip", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/users/me/followers?skip=-1", nil, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecipeRoutes(t *testing.T) {
	t.Run("search dessert", func(t *testing.T) {
		f := newAPIFixture(t)
		f.recipeUC.EXPECT().
			Search(mock.Anything, entity.RecipeFilter{Category: "dessert"}, entity.Page{Skip: 0, Limit: 10}).
			Return([]*entity.Recipe{{ID: uuid.New(), Title: "Pavlova"}}, nil)

		rec := f.do(http.MethodGet, "/api/recipes/search?category=dessert", nil, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pavlova")
	})

	t.Run("popular is public", func(t *testing.T) {
		f := newAPIFixture(t)
		f.recipeUC.EXPECT().ListPopular(mock.Anything, entity.Page{Skip: 0, Limit: 100}).Return([]*entity.Recipe{}, nil)

		rec := f.do(http.MethodGet, "/api/recipes/popular", nil, false)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		f := newAPIFixture(t)
		id := uuid.New()
		f.recipeUC.EXPECT().GetByID(mock.Anything, id).Return(nil, errors.Wrap(domainerrors.ErrRecipeNotFound, "get"))

		rec := f.do(http.MethodGet, "/api/recipes/"+id.String(), nil, false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("own requires auth", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/recipes/own", nil, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create json", func(t *testing.T) {
		f := newAPIFixture(t)
		categoryID, areaID, ingredientID := uuid.New(), uuid.New(), uuid.New()
		f.recipeUC.EXPECT().
			Create(mock.Anything, f.caller.ID, mock.MatchedBy(func(in *usecase.CreateRecipeInput) bool {
				return in.Title == "Soup" && in.CategoryID == categoryID && in.AreaID == areaID &&
					len(in.Ingredients) == 1 && in.Ingredients[0].IngredientID == ingredientID && in.Thumb == nil
			})).
			Return(&entity.Recipe{ID: uuid.New(), Title: "Soup"}, nil)

		rec := f.do(http.MethodPost, "/api/recipes", map[string]any{
			"title":        "Soup",
			"description":  "Warm",
			"instructions": "Boil",
			"time":         20,
			"category_id":  categoryID,
			"area_id":      areaID,
			"ingredients":  []map[string]any{{"id": ingredientID, "measure": "1 l"}},
		}, true)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("create multipart with thumb", func(t *testing.T) {
		f := newAPIFixture(t)
		categoryID, areaID, ingredientID := uuid.New(), uuid.New(), uuid.New()
		f.recipeUC.EXPECT().
			Create(mock.Anything, f.caller.ID, mock.MatchedBy(func(in *usecase.CreateRecipeInput) bool {
				return in.Time == 15 && in.Thumb != nil && in.Thumb.ContentType == "image/jpeg" &&
					len(in.Ingredients) == 1 && in.Ingredients[0].Measure == "2"
			})).
			Return(&entity.Recipe{ID: uuid.New()}, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for k, v := range map[string]string{
			"title":        "Toast",
			"description":  "Crunchy",
			"instructions": "Toast it",
			"time":         "15",
			"category_id":  categoryID.String(),
			"area_id":      areaID.String(),
			"ingredients":  `[{"id":"` + ingredientID.String() + `","measure":"2"}]`,
		} {
			require.NoError(t, mw.WriteField(k, v))
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="thumb"; filename="toast.jpg"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, _ = part.Write([]byte("jpg"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/recipes", &buf)
		req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
		rec := httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("create duplicate ingredient", func(t *testing.T) {
		f := newAPIFixture(t)
		ingredientID := uuid.New()

		rec := f.do(http.MethodPost, "/api/recipes", map[string]any{
			"title":        "Soup",
			"description":  "Warm",
			"instructions": "Boil",
			"time":         20,
			"category_id":  uuid.New(),
			"area_id":      uuid.New(),
			"ingredients": []map[string]any{
				{"id": ingredientID, "measure": "1 l"},
				{"id": ingredientID, "measure": "2 l"},
			},
		}, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "ingredients must not repeat ID")
	})

	t.Run("create invalid", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/recipes", map[string]any{"title": "Soup"}, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.True(t, strings.Contains(decode(t, rec).Error.Details, "ingredients is required"))
	})

	t.Run("delete someone else's", func(t *testing.T) {
		f := newAPIFixture(t)
		id := uuid.New()
		f.recipeUC.EXPECT().Delete(mock.Anything, f.caller.ID, id).Return(errors.Wrap(domainerrors.ErrNotRecipeOwner, "delete"))

		rec := f.do(http.MethodDelete, "/api/recipes/"+id.String(), nil, true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("favorite lifecycle", func(t *testing.T) {
		f := newAPIFixture(t)
		id := uuid.New()
		f.relationshipUC.EXPECT().AddFavorite(mock.Anything, f.caller.ID, id).Return(nil)
		f.relationshipUC.EXPECT().RemoveFavorite(mock.Anything, f.caller.ID, id).Return(true, nil).Once()
		f.relationshipUC.EXPECT().RemoveFavorite(mock.Anything, f.caller.ID, id).Return(false, nil).Once()
		f.relationshipUC.EXPECT().ListFavorites(mock.Anything, f.caller.ID, entity.Page{Skip: 0, Limit: 100}).
			Return([]*entity.Recipe{{ID: id}}, nil)

		assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/api/recipes/"+id.String()+"/favorite", nil, true).Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/recipes/favorites", nil, true).Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/recipes/"+id.String()+"/favorite", nil, true).Code)

		rec := f.do(http.MethodDelete, "/api/recipes/"+id.String()+"/favorite", nil, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "FAVORITE_NOT_FOUND", decode(t, rec).Error.Code)
	})
}

func TestCatalogRoutes(t *testing.T) {
	f := newAPIFixture(t)
	f.catalogUC.EXPECT().ListAreas(mock.Anything, entity.Page{Skip: 0, Limit: 100}).Return([]*entity.Area{{Name: "Italian"}}, nil)
	f.catalogUC.EXPECT().ListCategories(mock.Anything, entity.Page{Skip: 0, Limit: 100}).Return([]*entity.Category{}, nil)
	f.catalogUC.EXPECT().ListIngredients(mock.Anything, entity.Page{Skip: 0, Limit: 3}).Return([]*entity.Ingredient{}, nil)
	f.catalogUC.EXPECT().ListTestimonials(mock.Anything, entity.Page{Skip: 0, Limit: 10}).Return([]*entity.Testimonial{}, nil)

	for _, target := range []string{"/api/areas", "/api/categories", "/api/ingredients?limit=3", "/api/testimonials"} {
		rec := f.do(http.MethodGet, target, nil, false)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}
