package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fitgenius/backend/internal/mocks"
	"github.com/fitgenius/backend/internal/models"
	"github.com/fitgenius/backend/internal/types"
)

func TestProfileRoutes(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/profile/u1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPost, "/api/profile", map[string]any{
		"userId":        "u1",
		"age":           31,
		"gender":        "female",
		"activityLevel": "active",
		"fitnessGoals":  []string{"run a 10k"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[models.UserProfile](t, w)

	w = doJSON(router, http.MethodPut, "/api/profile/u1", `{"gender":"","weight":61.5,"fitnessGoals":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.UserProfile](t, w)

	assert.Equal(t, created.ID, updated.ID)
	assert.Nil(t, updated.Gender)
	assert.Nil(t, updated.FitnessGoals)
	require.NotNil(t, updated.Weight)
	assert.Equal(t, 61.5, *updated.Weight)
	require.NotNil(t, updated.ActivityLevel)
	assert.Equal(t, "active", *updated.ActivityLevel)

	w = doJSON(router, http.MethodGet, "/api/profile/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"gender":null`)
}

func TestCreateProfileValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/profile", map[string]any{"age": 20})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/profile", map[string]any{"userId": "u1", "age": -3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileRejectsNegativeHeight(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/profile", map[string]any{"userId": "u1", "height": 170})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPut, "/api/profile/u1", `{"height":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/profile/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 170.0, *decode[models.UserProfile](t, w).Height)
}

func TestUpdateMissingProfile(t *testing.T) {
	w := doJSON(newTestRouter(t), http.MethodPut, "/api/profile/ghost", map[string]any{"age": 40})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfilePassesPresentFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mocks.MockProfileService)
	svc.On("UpdateProfile", mock.Anything, "u1", mock.MatchedBy(func(req types.UpdateProfileRequest) bool {
		return req.Age.Set && *req.Age.Value == 40 && !req.Gender.Set && req.Allergies.Set && req.Allergies.Value == nil
	})).Return(&models.UserProfile{ID: "p1", UserID: "u1"}, nil)

	router := gin.New()
	NewProfileHandler(svc).RegisterRoutes(router.Group("/api"))

	w := doJSON(router, http.MethodPut, "/api/profile/u1", `{"age":40,"allergies":null}`)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestGetProfileInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(mocks.MockProfileService)
	svc.On("GetProfile", mock.Anything, "u1").Return(nil, errors.New("connection reset"))

	router := gin.New()
	NewProfileHandler(svc).RegisterRoutes(router.Group("/api"))

	w := doJSON(router, http.MethodGet, "/api/profile/u1", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Failed to fetch profile"}`, w.Body.String())
}
