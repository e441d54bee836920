package persondelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/account-ledger/internal/domain"
	"github.com/go-petr/account-ledger/pkg/errorspkg"
	"github.com/go-petr/account-ledger/pkg/randompkg"
	"github.com/go-petr/account-ledger/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(service Service) *gin.Engine {
	handler := NewHandler(service)

	engine := gin.New()
	engine.POST("/persons", handler.Create)
	engine.GET("/persons/:id", handler.Get)

	return engine
}

func randomPerson() domain.Person {
	return domain.Person{
		ID:        randompkg.IntBetween(1, 100),
		Name:      randompkg.Name(),
		Document:  randompkg.Document(),
		BirthDate: time.Date(1990, time.June, 12, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreate(t *testing.T) {
	person := randomPerson()

	testCases := []struct {
		name           string
		body           gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: gin.H{
				"name":       person.Name,
				"document":   person.Document,
				"birth_date": person.BirthDate,
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreatePersonParams{
					Name:      person.Name,
					Document:  person.Document,
					BirthDate: person.BirthDate,
				}

				service.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(person, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingName",
			body: gin.H{
				"document":   person.Document,
				"birth_date": person.BirthDate,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Name is required",
		},
		{
			name: "InvalidDocument",
			body: gin.H{
				"name":       person.Name,
				"document":   "123",
				"birth_date": person.BirthDate,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Document is invalid",
		},
		{
			name: "DocumentAlreadyExists",
			body: gin.H{
				"name":       person.Name,
				"document":   person.Document,
				"birth_date": person.BirthDate,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Person{}, domain.ErrDocumentAlreadyExists)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrDocumentAlreadyExists.Error(),
		},
		{
			name: "InternalError",
			body: gin.H{
				"name":       person.Name,
				"document":   person.Document,
				"birth_date": person.BirthDate,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Person{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(service)
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, "/persons", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			res := web.Response{
				Data: &struct {
					Person domain.Person `json:"person"`
				}{},
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, res.Error)
				return
			}

			got, ok := res.Data.(*struct {
				Person domain.Person `json:"person"`
			})
			require.True(t, ok)

			if diff := cmp.Diff(person, got.Person, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	person := randomPerson()

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			id:   fmt.Sprintf("%d", person.ID),
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(person.ID)).
					Times(1).
					Return(person, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "InvalidID",
			id:   "0",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID is required",
		},
		{
			name: "NotFound",
			id:   fmt.Sprintf("%d", person.ID),
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(person.ID)).
					Times(1).
					Return(domain.Person{}, domain.ErrPersonNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrPersonNotFound.Error(),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(service)
			recorder := httptest.NewRecorder()

			req, err := http.NewRequest(http.MethodGet, "/persons/"+tc.id, nil)
			require.NoError(t, err)

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			res := web.Response{
				Data: &struct {
					Person domain.Person `json:"person"`
				}{},
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, res.Error)
				return
			}

			got, ok := res.Data.(*struct {
				Person domain.Person `json:"person"`
			})
			require.True(t, ok)

			if diff := cmp.Diff(person, got.Person, cmpopts.EquateApproxTime(time.Second)); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
