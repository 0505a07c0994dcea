package handlers_test

import (
	"context"

	"github.com/cambiohoje/cambio_dashboard_app/internal/core/domain"
	portssvc "github.com/cambiohoje/cambio_dashboard_app/internal/core/ports/services"
	"github.com/cambiohoje/cambio_dashboard_app/internal/dto"
	"github.com/cambiohoje/cambio_dashboard_app/internal/handlers"
	"github.com/cambiohoje/cambio_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// --- Mock RatesService ---
type MockRatesService struct {
	mock.Mock
}

func (m *MockRatesService) RatesState(ctx context.Context) domain.RatesState {
	args := m.Called(ctx)
	return args.Get(0).(domain.RatesState)
}

func (m *MockRatesService) Refresh(ctx context.Context) domain.RatesState {
	args := m.Called(ctx)
	return args.Get(0).(domain.RatesState)
}

func (m *MockRatesService) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockRatesService) Stop() {
	m.Called()
}

// Ensure mock implements the interface
var _ portssvc.RatesSvcFacade = (*MockRatesService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) State(ctx context.Context) domain.DashboardState {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardState)
}

func (m *MockDashboardService) HistoryFor(ctx context.Context, code string, rangeRaw string) ([]domain.HistoryPoint, error) {
	args := m.Called(ctx, code, rangeRaw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryPoint), args.Error(1)
}

func (m *MockDashboardService) ListAlerts(ctx context.Context) []domain.AlertRule {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.AlertRule)
}

func (m *MockDashboardService) SelectCurrency(ctx context.Context, code string) domain.DashboardState {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.DashboardState)
}

func (m *MockDashboardService) SelectRange(ctx context.Context, rangeRaw string) (domain.DashboardState, error) {
	args := m.Called(ctx, rangeRaw)
	return args.Get(0).(domain.DashboardState), args.Error(1)
}

func (m *MockDashboardService) SubmitConversion(ctx context.Context, req dto.ConvertRequest) string {
	args := m.Called(ctx, req)
	return args.String(0)
}

func (m *MockDashboardService) SubmitAlert(ctx context.Context, req dto.CreateAlertRequest) (domain.AlertRule, int) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AlertRule), args.Int(1)
}

func (m *MockDashboardService) RemoveAlert(ctx context.Context, index int) error {
	args := m.Called(ctx, index)
	return args.Error(0)
}

func (m *MockDashboardService) Refresh(ctx context.Context) domain.RatesState {
	args := m.Called(ctx)
	return args.Get(0).(domain.RatesState)
}

// Ensure mock implements the interface
var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// newTestRouter wires the real registration path around the mocks.
func newTestRouter(mockRates *MockRatesService, mockDashboard *MockDashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := &config.Config{RateLimit: "1000-M"}
	services := &portssvc.ServiceContainer{
		Rates:     mockRates,
		Dashboard: mockDashboard,
	}
	handlers.RegisterRoutes(router, cfg, services)
	return router
}
