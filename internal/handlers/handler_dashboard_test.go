package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cambiohoje/cambio_dashboard_app/internal/apperrors"
	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type DashboardHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockRates     *MockRatesService
	mockDashboard *MockDashboardService
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.mockRates = new(MockRatesService)
	suite.mockDashboard = new(MockDashboardService)
	suite.router = newTestRouter(suite.mockRates, suite.mockDashboard)
}

func (suite *DashboardHandlerTestSuite) postJSON(url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func dashboardStateFixture() domain.DashboardState {
	return domain.DashboardState{
		Rates:            domain.RatesState{Current: snapshotFixture()},
		SelectedCurrency: "USD",
		SelectedRange:    domain.RangeWeek,
		History: []domain.HistoryPoint{
			{Label: "08/03", Rate: 5.02},
			{Label: "09/03", Rate: 4.97},
		},
		ConversionResult: "50.00",
	}
}

// --- Test Cases ---

func (suite *DashboardHandlerTestSuite) TestGetDashboard_Success() {
	suite.mockDashboard.On("State", mock.Anything).Return(dashboardStateFixture()).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.DashboardStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("USD", body.SelectedCurrency)
	suite.Equal("7d", body.SelectedRange)
	suite.Len(body.Rates.Rates, 4)
	suite.Len(body.History, 2)
	suite.Equal("50.00", body.ConversionResult)

	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestSelectCurrency_Success() {
	state := dashboardStateFixture()
	state.SelectedCurrency = "EUR"
	suite.mockDashboard.On("SelectCurrency", mock.Anything, "EUR").Return(state).Once()

	w := suite.postJSON("/api/v1/dashboard/currency", `{"code":"EUR"}`)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.DashboardStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("EUR", body.SelectedCurrency)

	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestSelectCurrency_MissingCode() {
	w := suite.postJSON("/api/v1/dashboard/currency", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Code")
	suite.mockDashboard.AssertNotCalled(suite.T(), "SelectCurrency", mock.Anything, mock.Anything)
}

func (suite *DashboardHandlerTestSuite) TestSelectRange_Success() {
	state := dashboardStateFixture()
	state.SelectedRange = domain.RangeMonth
	suite.mockDashboard.On("SelectRange", mock.Anything, "30d").Return(state, nil).Once()

	w := suite.postJSON("/api/v1/dashboard/range", `{"range":"30d"}`)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.DashboardStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("30d", body.SelectedRange)

	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestSelectRange_UnknownRange() {
	validationErr := fmt.Errorf("%w: unknown history range \"5m\"", apperrors.ErrValidation)
	suite.mockDashboard.On("SelectRange", mock.Anything, "5m").Return(domain.DashboardState{}, validationErr).Once()

	w := suite.postJSON("/api/v1/dashboard/range", `{"range":"5m"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetHistory_Success() {
	points := []domain.HistoryPoint{
		{Label: "13:30", Rate: 5.08},
		{Label: "14:30", Rate: 4.95},
	}
	suite.mockDashboard.On("HistoryFor", mock.Anything, "USD", "24h").Return(points, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/history?currency=USD&range=24h", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("USD", body.Currency)
	suite.Equal("24h", body.Range)
	suite.Require().Len(body.Points, 2)
	suite.Equal("13:30", body.Points[0].Label)

	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestGetHistory_MissingRangeParam() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/history?currency=USD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Range")
	suite.mockDashboard.AssertNotCalled(suite.T(), "HistoryFor", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DashboardHandlerTestSuite) TestGetHistory_UnknownRange() {
	validationErr := fmt.Errorf("%w: unknown history range \"2w\"", apperrors.ErrValidation)
	suite.mockDashboard.On("HistoryFor", mock.Anything, "USD", "2w").Return(nil, validationErr).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/history?currency=USD&range=2w", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestConvert_Success() {
	suite.mockDashboard.On("SubmitConversion", mock.Anything, dto.ConvertRequest{
		Amount: "10",
		From:   "USD",
		To:     "BRL",
	}).Return("50.00").Once()

	w := suite.postJSON("/api/v1/conversions", `{"amount":"10","from":"USD","to":"BRL"}`)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("50.00", body.Result)
	suite.Equal("USD", body.From)

	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestConvert_AbsentAmountIsAccepted() {
	suite.mockDashboard.On("SubmitConversion", mock.Anything, dto.ConvertRequest{
		From: "USD",
		To:   "BRL",
	}).Return("0.00").Once()

	w := suite.postJSON("/api/v1/conversions", `{"from":"USD","to":"BRL"}`)

	// A missing amount is a valid input that displays as zero.
	suite.Equal(http.StatusOK, w.Code)

	var body dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("0.00", body.Result)

	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *DashboardHandlerTestSuite) TestConvert_MissingCurrencyCodes() {
	w := suite.postJSON("/api/v1/conversions", `{"amount":"10"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "From")
	suite.mockDashboard.AssertNotCalled(suite.T(), "SubmitConversion", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
