package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainLoan "lendbook/internal/domain/loan"
	domainPartner "lendbook/internal/domain/partner"
	"lendbook/internal/testutil/loanmock"
	"lendbook/internal/testutil/partnermock"
	uc "lendbook/internal/usecase/report"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func reportUsecaseForTest() *uc.Usecase {
	partnerID := strings.Repeat("1", 32)
	partners := &partnermock.Repo{
		GetByPartnerIDFn: func(_ context.Context, got string) (*domainPartner.Partner, error) {
			if got != partnerID {
				return nil, gorm.ErrRecordNotFound
			}
			return &domainPartner.Partner{
				PartnerID: partnerID,
				Name:      "Alpha Capital",
				TopUps: []domainPartner.TopUp{
					{Date: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), Amount: 150000},
					{Date: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), Amount: 90000},
				},
			}, nil
		},
	}
	loans := &loanmock.Repo{
		ListFn: func(_ context.Context, state domainLoan.State) ([]*domainLoan.Loan, error) {
			return []*domainLoan.Loan{
				{
					LoanID: "a",
					State:  domainLoan.StateActive,
					Contributions: []domainLoan.Contribution{
						{PartnerID: partnerID, Amount: 600000, Rate: 4, RemainingBalance: 568800},
					},
					Payments: []domainLoan.Payment{
						{
							Date:         time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
							InterestPaid: 48000,
							Distribution: []domainLoan.DistributionEntry{
								{PartnerID: partnerID, Interest: 24000, Principal: 31200},
							},
						},
					},
				},
			}, nil
		},
	}
	return uc.NewUsecase(loans, partners)
}

func getReport(t *testing.T, h func(echo.Context) error, target, partnerID string) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("partner_id")
	c.SetParamValues(partnerID)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestMonthlyReport_Success(t *testing.T) {
	h := NewReportHandler(reportUsecaseForTest())
	partnerID := strings.Repeat("1", 32)

	rec := getReport(t, h.Monthly, "/reports/partners/x/monthly?year=2026&month=4", partnerID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got uc.MonthlyDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Year != 2026 || got.Month != 4 {
		t.Fatalf("period wrong: %+v", got)
	}
	if got.Earnings != 24000 || got.Contributions != 150000 {
		t.Fatalf("figures wrong: %+v", got)
	}
}

func TestMonthlyReport_MissingYear(t *testing.T) {
	h := NewReportHandler(reportUsecaseForTest())

	rec := getReport(t, h.Monthly, "/reports/partners/x/monthly?month=4", strings.Repeat("1", 32))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != "year is required" {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestMonthlyReport_MonthOutOfRange(t *testing.T) {
	h := NewReportHandler(reportUsecaseForTest())

	for _, q := range []string{"month=0", "month=13", "month=abc", ""} {
		rec := getReport(t, h.Monthly, "/reports/partners/x/monthly?year=2026&"+q, strings.Repeat("1", 32))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%q: status = %d, want 400", q, rec.Code)
		}
		var er ErrorResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &er)
		if er.Error != "month must be 1-12" {
			t.Fatalf("%q: error = %q", q, er.Error)
		}
	}
}

func TestMonthlyReport_UnknownPartner(t *testing.T) {
	h := NewReportHandler(reportUsecaseForTest())

	rec := getReport(t, h.Monthly, "/reports/partners/x/monthly?year=2026&month=4", strings.Repeat("9", 32))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestTotalFundedReport_Success(t *testing.T) {
	h := NewReportHandler(reportUsecaseForTest())
	partnerID := strings.Repeat("1", 32)

	rec := getReport(t, h.TotalFunded, "/reports/partners/x/funded", partnerID)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got uc.FundedDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.TotalFunded != 600000 {
		t.Fatalf("total_funded = %v, want original funded amount", got.TotalFunded)
	}
}

func TestTotalFundedReport_UnknownPartner(t *testing.T) {
	h := NewReportHandler(reportUsecaseForTest())

	rec := getReport(t, h.TotalFunded, "/reports/partners/x/funded", strings.Repeat("9", 32))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
