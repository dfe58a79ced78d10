package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func calculatorTestContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/calculator", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCalculatorHandler_FullMetrics(t *testing.T) {
	handler := NewCalculatorHandler()

	c, rec := calculatorTestContext(`{
		"height_cm": 180,
		"weight_kg": 80,
		"age": 30,
		"sex": "male",
		"activity_level": 1.55
	}`)

	if err := handler.Calculate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["bmi"] != 24.7 {
		t.Errorf("expected BMI 24.7, got %v", resp["bmi"])
	}
	if resp["bmi_category"] != "Normal weight" {
		t.Errorf("unexpected category: %v", resp["bmi_category"])
	}
	if resp["bmr"] != 1853.6 {
		t.Errorf("expected BMR 1853.6, got %v", resp["bmr"])
	}
	if resp["tdee"] != 2873.1 {
		t.Errorf("expected TDEE 2873.1, got %v", resp["tdee"])
	}
	if resp["calorie_goal"] != float64(2873) {
		t.Errorf("expected goal 2873, got %v", resp["calorie_goal"])
	}
}

func TestCalculatorHandler_BMIOnly(t *testing.T) {
	handler := NewCalculatorHandler()

	// without age and sex only the BMI block can be derived
	c, rec := calculatorTestContext(`{"height_cm": 160, "weight_kg": 45}`)

	if err := handler.Calculate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["bmi"] != 17.6 || resp["bmi_category"] != "Underweight" {
		t.Errorf("unexpected BMI block: %v %v", resp["bmi"], resp["bmi_category"])
	}
	for _, key := range []string{"bmr", "tdee", "calorie_goal"} {
		if _, ok := resp[key]; ok {
			t.Errorf("%s must be omitted without age and sex", key)
		}
	}
}

func TestCalculatorHandler_MissingHeight(t *testing.T) {
	handler := NewCalculatorHandler()

	c, rec := calculatorTestContext(`{"weight_kg": 80}`)

	_ = handler.Calculate(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCalculatorHandler_RejectsUnknownSex(t *testing.T) {
	handler := NewCalculatorHandler()

	c, rec := calculatorTestContext(`{"height_cm": 180, "weight_kg": 80, "sex": "unknown"}`)

	_ = handler.Calculate(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
