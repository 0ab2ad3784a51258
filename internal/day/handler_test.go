package day

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"habits-api/internal/habit"
)

type fakeService struct {
	dayResp *DaySummaryResponse
	rows    []SummaryRow
	gotDate time.Time
	err     error
}

func (f *fakeService) GetDay(ctx context.Context, date time.Time) (*DaySummaryResponse, error) {
	f.gotDate = date
	return f.dayResp, f.err
}

func (f *fakeService) ToggleHabit(ctx context.Context, habitID uuid.UUID) error {
	return f.err
}

func (f *fakeService) Summary(ctx context.Context) ([]SummaryRow, error) {
	return f.rows, f.err
}

func newTestRouter(s Service) http.Handler {
	h := NewHandler(s)
	r := chi.NewRouter()
	r.Mount("/day", Routes(h))
	r.Get("/summary", h.Summary)
	return r
}

func TestGetDayEndpoint(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		svc := &fakeService{dayResp: &DaySummaryResponse{
			PossibleHabits:  []habit.Habit{{ID: uuid.New(), Title: "Read"}},
			CompletedHabits: []CompletedHabit{{HabitID: uuid.New()}},
		}}
		r := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/day?date=2023-01-04", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		body := rec.Body.String()
		if !strings.Contains(body, `"possibleHabits"`) || !strings.Contains(body, `"completedHabits"`) {
			t.Errorf("unexpected body: %s", body)
		}
		want := time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)
		if !svc.gotDate.Equal(want) {
			t.Errorf("service received date %v, want %v", svc.gotDate, want)
		}
	})

	t.Run("CompletedHabitsOmittedWhenAbsent", func(t *testing.T) {
		svc := &fakeService{dayResp: &DaySummaryResponse{PossibleHabits: []habit.Habit{}}}
		r := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/day?date=2023-01-04", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		body := rec.Body.String()
		if strings.Contains(body, "completedHabits") {
			t.Errorf("completedHabits should be absent, got %s", body)
		}
		if !strings.Contains(body, `"possibleHabits":[]`) {
			t.Errorf("possibleHabits should be an empty array, got %s", body)
		}
	})

	t.Run("MissingDate", func(t *testing.T) {
		r := newTestRouter(&fakeService{})

		req := httptest.NewRequest(http.MethodGet, "/day", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("UnparseableDate", func(t *testing.T) {
		r := newTestRouter(&fakeService{})

		req := httptest.NewRequest(http.MethodGet, "/day?date=yesterday", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestSummaryEndpoint(t *testing.T) {
	svc := &fakeService{rows: []SummaryRow{
		{ID: uuid.New(), Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Completed: 1, Amount: 2},
	}}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"completed":1`) || !strings.Contains(body, `"amount":2`) {
		t.Errorf("unexpected body: %s", body)
	}
}
