package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/caltrack/caltrack/internal/core/domain"
	"github.com/caltrack/caltrack/internal/core/ports"
)

type stubProfileService struct {
	getFn       func(ctx context.Context, userID string) (*domain.User, error)
	updateFn    func(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error)
	saveStatsFn func(ctx context.Context, userID string, input ports.SaveStatsInput) (*domain.User, error)
	deleteFn    func(ctx context.Context, userID, tokenID string, expiresAt time.Time) error
}

func (s *stubProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.getFn(ctx, userID)
}

func (s *stubProfileService) Update(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, userID, input)
}

func (s *stubProfileService) SaveStats(ctx context.Context, userID string, input ports.SaveStatsInput) (*domain.User, error) {
	return s.saveStatsFn(ctx, userID, input)
}

func (s *stubProfileService) DeleteAccount(ctx context.Context, userID, tokenID string, expiresAt time.Time) error {
	return s.deleteFn(ctx, userID, tokenID, expiresAt)
}

func profileTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")
	return c, rec
}

func TestProfileHandler_Get_WithStats(t *testing.T) {
	stub := &stubProfileService{
		getFn: func(_ context.Context, userID string) (*domain.User, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user: %s", userID)
			}
			return &domain.User{
				ID: userID, Username: "alice",
				Profile: domain.Profile{
					HeightCm: 180, WeightKg: 80, Age: 30,
					Sex: domain.SexMale, ActivityLevel: 1.55,
				},
			}, nil
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := profileTestContext(t, http.MethodGet, "/profile", "")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	stats, ok := resp["stats"].(map[string]any)
	if !ok {
		t.Fatal("expected derived stats for a complete profile")
	}
	if stats["bmi"] != 24.7 || stats["calorie_goal"] != float64(2873) {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestProfileHandler_Get_NoMetricsNoStats(t *testing.T) {
	stub := &stubProfileService{
		getFn: func(_ context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Username: "alice"}, nil
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := profileTestContext(t, http.MethodGet, "/profile", "")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["stats"]; ok {
		t.Error("stats must be omitted without body metrics")
	}
}

func TestProfileHandler_Get_Unauthenticated(t *testing.T) {
	handler := NewProfileHandler(&stubProfileService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected a 401 HTTPError, got %v", err)
	}
}

func TestProfileHandler_Update_ForwardsPartialInput(t *testing.T) {
	var gotInput ports.UpdateProfileInput
	stub := &stubProfileService{
		updateFn: func(_ context.Context, _ string, input ports.UpdateProfileInput) (*domain.User, error) {
			gotInput = input
			return &domain.User{ID: "user-1", Username: "alice"}, nil
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := profileTestContext(t, http.MethodPut, "/profile", `{"weight_kg": 77.5, "calorie_goal": 2100}`)

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if gotInput.WeightKg == nil || *gotInput.WeightKg != 77.5 {
		t.Errorf("weight not forwarded: %v", gotInput.WeightKg)
	}
	if gotInput.CalorieGoal == nil || *gotInput.CalorieGoal != 2100 {
		t.Errorf("goal not forwarded: %v", gotInput.CalorieGoal)
	}
	// absent fields must stay nil so the service leaves them untouched
	if gotInput.Email != nil || gotInput.HeightCm != nil || gotInput.Sex != nil {
		t.Errorf("absent fields must be nil: %+v", gotInput)
	}
}

func TestProfileHandler_Update_RejectsBadActivityLevel(t *testing.T) {
	stub := &stubProfileService{
		updateFn: func(_ context.Context, _ string, _ ports.UpdateProfileInput) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := profileTestContext(t, http.MethodPut, "/profile", `{"activity_level": 9}`)

	_ = handler.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_ConflictPassesThrough(t *testing.T) {
	stub := &stubProfileService{
		updateFn: func(_ context.Context, _ string, _ ports.UpdateProfileInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewProfileHandler(stub)

	c, _ := profileTestContext(t, http.MethodPut, "/profile", `{"email": "taken@example.com"}`)

	err := handler.Update(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected the sentinel for the central error handler, got %v", err)
	}
}

func TestProfileHandler_SaveStats_Success(t *testing.T) {
	var gotInput ports.SaveStatsInput
	stub := &stubProfileService{
		saveStatsFn: func(_ context.Context, _ string, input ports.SaveStatsInput) (*domain.User, error) {
			gotInput = input
			return &domain.User{
				ID: "user-1", Username: "alice", CalorieGoal: 2873,
				Profile: domain.Profile{
					HeightCm: input.HeightCm, WeightKg: input.WeightKg,
					Age: input.Age, Sex: input.Sex, ActivityLevel: input.ActivityLevel,
				},
			}, nil
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := profileTestContext(t, http.MethodPost, "/profile/stats", `{
		"height_cm": 180,
		"weight_kg": 80,
		"age": 30,
		"sex": "male",
		"activity_level": 1.55
	}`)

	if err := handler.SaveStats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotInput.HeightCm != 180 || gotInput.Sex != "male" || gotInput.ActivityLevel != 1.55 {
		t.Errorf("input mapping wrong: %+v", gotInput)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	stats, ok := resp["stats"].(map[string]any)
	if !ok || stats["calorie_goal"] != float64(2873) {
		t.Fatalf("expected the pinned goal in stats: %+v", resp["stats"])
	}
}

func TestProfileHandler_SaveStats_MissingMetrics(t *testing.T) {
	stub := &stubProfileService{
		saveStatsFn: func(_ context.Context, _ string, _ ports.SaveStatsInput) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewProfileHandler(stub)

	c, rec := profileTestContext(t, http.MethodPost, "/profile/stats", `{"height_cm": 180}`)

	_ = handler.SaveStats(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProfileHandler_Delete_Success(t *testing.T) {
	var gotUserID, gotTokenID string
	var gotExpiry time.Time
	stub := &stubProfileService{
		deleteFn: func(_ context.Context, userID, tokenID string, expiresAt time.Time) error {
			gotUserID = userID
			gotTokenID = tokenID
			gotExpiry = expiresAt
			return nil
		},
	}
	handler := NewProfileHandler(stub)

	expiry := time.Now().Add(time.Hour)
	c, rec := profileTestContext(t, http.MethodDelete, "/profile", "")
	c.Set("token_id", "jti-1")
	c.Set("token_expires", expiry)

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "user-1" {
		t.Errorf("user not forwarded: %q", gotUserID)
	}
	if gotTokenID != "jti-1" || !gotExpiry.Equal(expiry) {
		t.Errorf("token claims not forwarded: id=%q expiry=%v", gotTokenID, gotExpiry)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "account deleted" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
}

func TestProfileHandler_Delete_MissingTokenClaims(t *testing.T) {
	handler := NewProfileHandler(&stubProfileService{
		deleteFn: func(_ context.Context, _, _ string, _ time.Time) error {
			t.Fatal("service must not be called without token claims")
			return nil
		},
	})

	c, _ := profileTestContext(t, http.MethodDelete, "/profile", "")

	err := handler.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", he.Code)
	}
}
