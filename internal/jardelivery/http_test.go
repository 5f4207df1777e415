package jardelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/threejars/ledger/internal/domain"
	"github.com/threejars/ledger/pkg/errorspkg"
	"github.com/threejars/ledger/pkg/kindpkg"
	"github.com/threejars/ledger/pkg/randompkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type errorResponse struct {
	Error string `json:"error"`
}

func randomJarSet(profileID string) []domain.Jar {
	jars := make([]domain.Jar, 0, len(kindpkg.JarKinds))

	for _, kind := range kindpkg.JarKinds {
		jars = append(jars, domain.Jar{
			ID:        uuid.NewString(),
			ProfileID: profileID,
			Kind:      kind,
			Balance:   randompkg.MoneyAmountBetween(0, 100),
			CreatedAt: time.Now().Truncate(time.Second).UTC(),
		})
	}

	return jars
}

func TestList(t *testing.T) {
	profileID := uuid.NewString()
	jars := randomJarSet(profileID)

	testCases := []struct {
		name           string
		profileID      string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:      "OK",
			profileID: profileID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForProfile(gomock.Any(), gomock.Eq(profileID)).
					Times(1).
					Return(jars, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "InvalidProfileID",
			profileID: "abc",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForProfile(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "ProfileNotFound",
			profileID: profileID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForProfile(gomock.Any(), gomock.Eq(profileID)).
					Times(1).
					Return(nil, domain.ErrProfileNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrProfileNotFound.Error(),
		},
		{
			name:      "InternalError",
			profileID: profileID,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForProfile(gomock.Any(), gomock.Eq(profileID)).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.GET("/profiles/:id/jars", handler.List)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodGet, "/profiles/"+tc.profileID+"/jars", nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode == http.StatusOK {
				var res responseJars
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
				require.Len(t, res.Data.Jars, len(kindpkg.JarKinds))

				return
			}

			if tc.wantError != "" {
				var res errorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
				require.Equal(t, tc.wantError, res.Error)
			}
		})
	}
}

func TestSetGoal(t *testing.T) {
	jarID := uuid.NewString()
	jar := domain.Jar{
		ID:              jarID,
		ProfileID:       uuid.NewString(),
		Kind:            kindpkg.Save,
		Balance:         "85.00",
		GoalAmount:      "150.00",
		GoalDescription: "new bike",
		CreatedAt:       time.Now().Truncate(time.Second).UTC(),
	}

	testCases := []struct {
		name           string
		requestBody    any
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: gin.H{"goal_amount": "150.00", "goal_description": "new bike"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					SetGoal(gomock.Any(), gomock.Eq(jarID), gomock.Eq("150.00"), gomock.Eq("new bike")).
					Times(1).
					Return(jar, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "MissingGoalAmount",
			requestBody: gin.H{"goal_description": "new bike"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					SetGoal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "GoalAmount field is required",
		},
		{
			name:        "NegativeGoalAmount",
			requestBody: gin.H{"goal_amount": "-5"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					SetGoal(gomock.Any(), gomock.Eq(jarID), gomock.Eq("-5"), gomock.Any()).
					Times(1).
					Return(domain.Jar{}, domain.ErrNonPositiveAmount)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrNonPositiveAmount.Error(),
		},
		{
			name:        "JarNotFound",
			requestBody: gin.H{"goal_amount": "150.00"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					SetGoal(gomock.Any(), gomock.Eq(jarID), gomock.Eq("150.00"), gomock.Any()).
					Times(1).
					Return(domain.Jar{}, domain.ErrJarNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrJarNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.PATCH("/jars/:id/goal", handler.SetGoal)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPatch, "/jars/"+jarID+"/goal", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode == http.StatusOK {
				var res responseJar
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
				require.Equal(t, "150.00", res.Data.Jar.GoalAmount)
				require.Equal(t, "new bike", res.Data.Jar.GoalDescription)

				return
			}

			var res errorResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
			require.Equal(t, tc.wantError, res.Error)
		})
	}
}
