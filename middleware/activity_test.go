package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"month_balance_ms/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

func TestClassifyActivity(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		method  string
		want    domain.ActivityType
		matched bool
	}{
		{"month data created", "/api/v1/monthdata", fiber.MethodPost, domain.ActivityMonthDataCreated, true},
		{"month data viewed", "/api/v1/monthdata/2026/8", fiber.MethodGet, domain.ActivityMonthDataViewed, true},
		{"month data updated", "/api/v1/monthdata/5", fiber.MethodPut, domain.ActivityMonthDataUpdated, true},
		{"month data deleted", "/api/v1/monthdata/5", fiber.MethodDelete, domain.ActivityMonthDataDeleted, true},
		{"income type beats income", "/api/v1/incometypes", fiber.MethodPost, domain.ActivityIncomeTypeCreated, true},
		{"income created", "/api/v1/incomes", fiber.MethodPost, domain.ActivityIncomeCreated, true},
		{"expense type beats expense", "/api/v1/expensetypes/3", fiber.MethodDelete, domain.ActivityExpenseTypeDeleted, true},
		{"expense updated", "/api/v1/expenses/3", fiber.MethodPut, domain.ActivityExpenseUpdated, true},
		{"feedback sent", "/api/v1/feedback", fiber.MethodPost, domain.ActivityFeedbackSent, true},
		{"admin any method", "/api/v1/admin/dashboard", fiber.MethodGet, domain.ActivityAdminPanelAccessed, true},
		{"admin post", "/api/v1/admin/users", fiber.MethodPost, domain.ActivityAdminPanelAccessed, true},
		{"case insensitive", "/API/V1/MonthData", fiber.MethodGet, domain.ActivityMonthDataViewed, true},
		{"feedback get unmatched", "/api/v1/feedback", fiber.MethodGet, "", false},
		{"auth route unmatched", "/api/v1/auth/webauthn/authenticate", fiber.MethodPost, "", false},
		{"unknown path unmatched", "/api/v1/health", fiber.MethodGet, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := ClassifyActivity(tt.path, tt.method)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, tt.want, got)
		})
	}
}

type trackedCall struct {
	userID    uint
	kind      domain.ActivityType
	ip        string
	userAgent string
}

type fakeAnalytics struct {
	calls chan trackedCall
}

func (f *fakeAnalytics) TrackActivity(userID uint, kind domain.ActivityType, ip, userAgent string) {
	f.calls <- trackedCall{userID: userID, kind: kind, ip: ip, userAgent: userAgent}
}

func (f *fakeAnalytics) GetTotalUsers() (int64, error)                 { return 0, nil }
func (f *fakeAnalytics) GetActiveUsers(_ time.Time) (int64, error)     { return 0, nil }
func (f *fakeAnalytics) GetNewUsers(_ time.Time) (int64, error)        { return 0, nil }
func (f *fakeAnalytics) GetTopActivities(_ *time.Time) (map[domain.ActivityType]int64, error) {
	return nil, nil
}
func (f *fakeAnalytics) GetRecentActivities(_ int) ([]domain.UserActivity, error) {
	return nil, nil
}

func newActivityTestApp(analytics *fakeAnalytics, authenticated bool) *fiber.App {
	app := fiber.New()
	if authenticated {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(LocalUserID, uint(7))
			c.Locals(LocalEmail, "aysel@example.com")
			return c.Next()
		})
	}
	app.Use(ActivityTrackingMiddleware(analytics, zap.NewNop()))
	app.Post("/api/v1/feedback", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Get("/api/v1/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestActivityTrackingMiddleware_RecordsAuthenticatedRequest(t *testing.T) {
	analytics := &fakeAnalytics{calls: make(chan trackedCall, 1)}
	app := newActivityTestApp(analytics, true)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/feedback", nil)
	req.Header.Set(fiber.HeaderUserAgent, "test-client")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	select {
	case call := <-analytics.calls:
		assert.Equal(t, uint(7), call.userID)
		assert.Equal(t, domain.ActivityFeedbackSent, call.kind)
		assert.Equal(t, "test-client", call.userAgent)
	case <-time.After(time.Second):
		t.Fatal("expected activity to be tracked")
	}
}

func TestActivityTrackingMiddleware_UserAgentSurvivesHeaderBufferReuse(t *testing.T) {
	analytics := &fakeAnalytics{calls: make(chan trackedCall, 1)}
	app := newActivityTestApp(analytics, true)
	handler := app.Handler()

	first := strings.Repeat("A", 64)
	second := strings.Repeat("B", 64)

	var fctx fasthttp.RequestCtx
	fctx.Request.Header.SetMethod(fiber.MethodPost)
	fctx.Request.SetRequestURI("/api/v1/feedback")
	fctx.Request.Header.SetUserAgent(first)
	handler(&fctx)

	var call trackedCall
	select {
	case call = <-analytics.calls:
	case <-time.After(time.Second):
		t.Fatal("expected activity to be tracked")
	}

	// On a keep-alive connection fasthttp reuses the header buffer for the
	// next request; the recorded user-agent must not alias it.
	fctx.Request.Header.SetUserAgent(second)

	assert.Equal(t, first, call.userAgent)
}

func TestActivityTrackingMiddleware_SkipsUnauthenticated(t *testing.T) {
	analytics := &fakeAnalytics{calls: make(chan trackedCall, 1)}
	app := newActivityTestApp(analytics, false)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/feedback", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	select {
	case <-analytics.calls:
		t.Fatal("unauthenticated request must not be tracked")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestActivityTrackingMiddleware_SkipsUnclassifiedPath(t *testing.T) {
	analytics := &fakeAnalytics{calls: make(chan trackedCall, 1)}
	app := newActivityTestApp(analytics, true)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	select {
	case <-analytics.calls:
		t.Fatal("unmatched path must not be tracked")
	case <-time.After(100 * time.Millisecond):
	}
}
