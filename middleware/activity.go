package middleware

import (
	"strings"

	"month_balance_ms/domain"
	"month_balance_ms/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

type activityRule struct {
	pathPart string
	method   string // empty matches any method
	kind     domain.ActivityType
}

// activityRules is evaluated first-match-wins against the completed
// request. Paths for income/expense/month-data CRUD are served by sibling
// services behind the same gateway; classification only needs the path.
var activityRules = []activityRule{
	{"/monthdata", fiber.MethodPost, domain.ActivityMonthDataCreated},
	{"/monthdata", fiber.MethodGet, domain.ActivityMonthDataViewed},
	{"/monthdata", fiber.MethodPut, domain.ActivityMonthDataUpdated},
	{"/monthdata", fiber.MethodDelete, domain.ActivityMonthDataDeleted},

	{"/incometypes", fiber.MethodPost, domain.ActivityIncomeTypeCreated},
	{"/incometypes", fiber.MethodPut, domain.ActivityIncomeTypeUpdated},
	{"/incometypes", fiber.MethodDelete, domain.ActivityIncomeTypeDeleted},
	{"/incomes", fiber.MethodPost, domain.ActivityIncomeCreated},
	{"/incomes", fiber.MethodPut, domain.ActivityIncomeUpdated},
	{"/incomes", fiber.MethodDelete, domain.ActivityIncomeDeleted},

	{"/expensetypes", fiber.MethodPost, domain.ActivityExpenseTypeCreated},
	{"/expensetypes", fiber.MethodPut, domain.ActivityExpenseTypeUpdated},
	{"/expensetypes", fiber.MethodDelete, domain.ActivityExpenseTypeDeleted},
	{"/expenses", fiber.MethodPost, domain.ActivityExpenseCreated},
	{"/expenses", fiber.MethodPut, domain.ActivityExpenseUpdated},
	{"/expenses", fiber.MethodDelete, domain.ActivityExpenseDeleted},

	{"/feedback", fiber.MethodPost, domain.ActivityFeedbackSent},
	{"/admin", "", domain.ActivityAdminPanelAccessed},
}

// ClassifyActivity maps a completed request to an activity kind; the second
// return is false for combinations that produce no record.
func ClassifyActivity(path, method string) (domain.ActivityType, bool) {
	lowered := strings.ToLower(path)
	for _, rule := range activityRules {
		if !strings.Contains(lowered, rule.pathPart) {
			continue
		}
		if rule.method != "" && rule.method != method {
			continue
		}
		return rule.kind, true
	}
	return "", false
}

// ActivityTrackingMiddleware records authenticated requests after the
// response is produced. The write happens on a detached goroutine with its
// own recover, so the request path never waits on the activity store and
// write failures never reach the client.
func ActivityTrackingMiddleware(analytics services.IAnalyticsService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		userID, ok := UserIDFromContext(c)
		if !ok {
			return err
		}

		kind, matched := ClassifyActivity(c.Path(), c.Method())
		if !matched {
			return err
		}

		// Header values alias fasthttp's per-connection buffer, which the
		// next request on a keep-alive connection rewrites. The goroutine
		// outlives the handler, so it needs its own copy.
		ip := c.IP()
		userAgent := utils.CopyString(c.Get(fiber.HeaderUserAgent))

		go func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic while tracking activity", zap.Any("panic", r))
				}
			}()
			analytics.TrackActivity(userID, kind, ip, userAgent)
		}()

		return err
	}
}
