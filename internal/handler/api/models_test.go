//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"droidforge/internal/domain/user"
	"droidforge/internal/handler/api"
	reqdto "droidforge/internal/handler/dto/request"
	"droidforge/internal/pkg/errs"
	"droidforge/internal/usecase/queries"
	"droidforge/tests/common/builder"
	"droidforge/tests/common/httptest"
	"droidforge/tests/common/testutil"
	commandsmock "droidforge/tests/mock/commands"
	queriesmock "droidforge/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ModelHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGenerationCommands
	mockQueries  *queriesmock.MockModelQueries
	handler      *api.ModelHandler
	authedUser   uuid.UUID
}

func (s *ModelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGenerationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockModelQueries(s.mockCtrl)
	s.handler = api.NewModelHandler(s.mockCommands, s.mockQueries)
	s.authedUser = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.authedUser)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/models", authMiddleware, s.handler.Create)
	s.router.GET("/models", authMiddleware, s.handler.ListMine)
	s.router.GET("/models/:id", authMiddleware, s.handler.Get)
	s.router.POST("/models/:id/generate", authMiddleware, s.handler.Generate)
	s.router.POST("/models/:id/like", authMiddleware, s.handler.ToggleLike)
	s.router.PATCH("/models/:id/visibility", authMiddleware, s.handler.UpdateVisibility)
	s.router.GET("/gallery/public", s.handler.ListPublic)
	s.router.GET("/gallery/reusable", s.handler.ListReusable)
}

func (s *ModelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestModelHandlerSuite(t *testing.T) {
	suite.Run(t, new(ModelHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ModelHandlerTestSuite) TestCreate() {
	url := "/models"

	reqBody := builder.NewModelBuilder().BuildCreateRequestDTO()
	returnView := builder.NewModelBuilder().WithUserID(uuid.New()).BuildView()

	s.Run("success: returns 201 Created with model view", func() {
		s.mockCommands.EXPECT().CreateModel(gomock.Any(), s.authedUser, reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response queries.ModelView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("awaiting_approval", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing title", mutate: testutil.Field("title", nil)},
			{name: "missing prompt", mutate: testutil.Field("prompt", nil)},
			{name: "missing generator", mutate: testutil.Field("generator", nil)},
			{name: "missing settings", mutate: testutil.Field("settings", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "free quota exhausted",
				commandsError:  errs.ErrQuotaExhausted,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "No free generations remaining",
			},
			{
				name:           "no provider credential",
				commandsError:  errs.ErrMissingProviderCredential,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No API key available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateModel(gomock.Any(), s.authedUser, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGenerate
// ================================================================================

func (s *ModelHandlerTestSuite) TestGenerate() {
	modelID := uuid.New()
	url := "/models/" + modelID.String() + "/generate"

	s.Run("success: returns 202 Accepted", func() {
		s.mockCommands.EXPECT().ExecuteGeneration(gomock.Any(), s.authedUser, modelID, reqdto.ExecuteGenerationRequest{}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("success: forwards an edited enhanced prompt", func() {
		edited := "a highly detailed articulated dragon, print-optimized"
		s.mockCommands.EXPECT().
			ExecuteGeneration(gomock.Any(), s.authedUser, modelID, gomock.Cond(func(req reqdto.ExecuteGenerationRequest) bool {
				return req.EnhancedPrompt != nil && *req.EnhancedPrompt == edited
			})).
			Return(nil).Times(1)

		body := map[string]any{"enhanced_prompt": edited}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/models/invalid-uuid/generate"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid model ID format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "model not owned",
				commandsError:  errs.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Forbidden",
			},
			{
				name:           "model not found",
				commandsError:  errs.ErrModelNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Model not found",
			},
			{
				name:           "model not approved yet",
				commandsError:  errs.ErrInvalidTransition,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not in a state",
			},
			{
				name:           "provider rejected the job",
				commandsError:  errs.ErrProviderFailure,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Generation provider failure",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ExecuteGeneration(gomock.Any(), s.authedUser, modelID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestToggleLike
// ================================================================================

func (s *ModelHandlerTestSuite) TestToggleLike() {
	modelID := uuid.New()
	url := "/models/" + modelID.String() + "/like"

	s.Run("success: liking reports the new state", func() {
		s.mockCommands.EXPECT().ToggleLike(gomock.Any(), s.authedUser, modelID).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"liked": true}`, rec.Body.String())
	})

	s.Run("success: a second toggle removes the like", func() {
		s.mockCommands.EXPECT().ToggleLike(gomock.Any(), s.authedUser, modelID).
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"liked": false}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/models/not-a-uuid/like", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid model ID format")
	})

	s.Run("error: 404 Not Found for missing model", func() {
		s.mockCommands.EXPECT().ToggleLike(gomock.Any(), s.authedUser, modelID).
			Return(false, errs.ErrModelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Model not found")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ModelHandlerTestSuite) TestGet() {
	modelID := uuid.New()
	url := "/models/" + modelID.String()

	s.Run("success: returns 200 OK with model view", func() {
		returnView := builder.NewModelBuilder().WithStatus("completed").BuildView()
		returnView.ID = modelID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUser, modelID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.ModelView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(modelID, response.ID)
		s.Equal("completed", response.Status)
	})

	s.Run("error: 404 when hidden from the requester", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUser, modelID).
			Return(nil, errs.ErrModelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Model not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/models/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid model ID format")
	})
}

// ================================================================================
// TestListPublic
// ================================================================================

func (s *ModelHandlerTestSuite) TestListPublic() {
	items := []*queries.ModelView{
		builder.NewModelBuilder().WithStatus("completed").WithPublic(true).BuildView(),
		builder.NewModelBuilder().WithStatus("completed").WithPublic(true).BuildView(),
	}

	s.Run("success: returns gallery without authentication", func() {
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gallery/public", nil, "")

		var response []*queries.ModelView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: forwards the limit parameter", func() {
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), 10).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gallery/public?limit=10", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: ignores a malformed limit", func() {
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gallery/public?limit=abc", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().ListPublic(gomock.Any(), 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/gallery/public", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpdateVisibility
// ================================================================================

func (s *ModelHandlerTestSuite) TestUpdateVisibility() {
	modelID := uuid.New()
	url := "/models/" + modelID.String() + "/visibility"

	isPublic := true
	reqBody := map[string]any{"is_public": isPublic}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateVisibility(gomock.Any(), s.authedUser, modelID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for someone else's model", func() {
		s.mockCommands.EXPECT().UpdateVisibility(gomock.Any(), s.authedUser, modelID, gomock.Any()).
			Return(errs.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
