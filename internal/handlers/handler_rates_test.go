package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type RatesHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockRates     *MockRatesService
	mockDashboard *MockDashboardService
}

func (suite *RatesHandlerTestSuite) SetupTest() {
	suite.mockRates = new(MockRatesService)
	suite.mockDashboard = new(MockDashboardService)
	suite.router = newTestRouter(suite.mockRates, suite.mockDashboard)
}

func snapshotFixture() *domain.Snapshot {
	return &domain.Snapshot{
		Records: []domain.CurrencyRecord{
			{Code: "USD", Symbol: "$", Rate: 5.0},
			{Code: "EUR", Symbol: "€", Rate: 6.25},
			{Code: "GBP", Symbol: "£", Rate: 8.0},
			{Code: "BRL", Symbol: "R$", Rate: 1.0},
		},
		ObservedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *RatesHandlerTestSuite) TestGetRates_Success() {
	snapshot := snapshotFixture()
	observed := snapshot.ObservedAt
	state := domain.RatesState{Current: snapshot, LastUpdate: &observed}

	suite.mockRates.On("RatesState", mock.Anything).Return(state).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.RatesStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Rates, 4)
	suite.Equal("USD", body.Rates[0].Code)
	suite.Equal("R$ 5.00", body.Rates[0].Display)
	suite.Nil(body.Error)
	suite.Require().NotNil(body.LastUpdate)
	suite.True(observed.Equal(*body.LastUpdate))

	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *RatesHandlerTestSuite) TestGetRates_ErrorStateWithoutSnapshot() {
	state := domain.RatesState{ErrMsg: "Erro ao carregar taxas de câmbio: connection refused"}

	suite.mockRates.On("RatesState", mock.Anything).Return(state).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/rates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	// Fetch failures surface as state, not as HTTP errors.
	suite.Equal(http.StatusOK, w.Code)

	var body dto.RatesStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Empty(body.Rates)
	suite.Require().NotNil(body.Error)
	suite.Contains(*body.Error, "Erro ao carregar taxas de câmbio")
	suite.Nil(body.LastUpdate)
}

func (suite *RatesHandlerTestSuite) TestRefreshRates_InvokesFetchCycle() {
	snapshot := snapshotFixture()
	observed := snapshot.ObservedAt
	state := domain.RatesState{Current: snapshot, LastUpdate: &observed}

	suite.mockRates.On("Refresh", mock.Anything).Return(state).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.RatesStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Rates, 4)

	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *RatesHandlerTestSuite) TestRefreshRates_FailureStillReturnsOK() {
	state := domain.RatesState{ErrMsg: "Erro ao carregar taxas de câmbio: result \"error\""}

	suite.mockRates.On("Refresh", mock.Anything).Return(state).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.RatesStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().NotNil(body.Error)
	suite.mockRates.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestRatesHandler(t *testing.T) {
	suite.Run(t, new(RatesHandlerTestSuite))
}
