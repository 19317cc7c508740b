package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// SalesReport is the admin dashboard's revenue summary for a date
// range.
type SalesReport struct {
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	OrderCount   int64           `json:"orderCount"`
}

// UserActivityReport summarizes account activity for the admin
// dashboard.
type UserActivityReport struct {
	TotalUsers  int64 `json:"totalUsers"`
	ActiveUsers int64 `json:"activeUsers"`
	NewUsers    int64 `json:"newUsers"`
}

// GetSalesReport fetches the sales report between two dates, formatted
// YYYY-MM-DD as the dashboard sends them.
func (c *Client) GetSalesReport(ctx context.Context, startDate, endDate string) (*SalesReport, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	return getJSON[*SalesReport](ctx, c, "/api/admin/reports/sales", q, true)
}

// GetUserActivityReport fetches the account activity summary.
func (c *Client) GetUserActivityReport(ctx context.Context) (*UserActivityReport, error) {
	return getJSON[*UserActivityReport](ctx, c, "/api/admin/reports/users", nil, true)
}

type chatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the chatbot's answer to one message.
type ChatReply struct {
	Reply string `json:"reply"`
}

// AskChatbot sends one message to the storefront chatbot.  The endpoint
// is public; the token rides along when present so the bot can
// personalize.
func (c *Client) AskChatbot(ctx context.Context, message string) (*ChatReply, error) {
	return sendJSON[*ChatReply](ctx, c, http.MethodPost, "/api/chatbot/ask", chatRequest{Message: message}, false)
}
