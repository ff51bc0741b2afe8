package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRecover(t *testing.T) {
	for _, dev := range []bool{false, true} {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		handler := Recover(dev, zerolog.Nop())(func(c echo.Context) error {
			panic("boom")
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != "something went wrong" || body["retry"] != true {
			t.Fatalf("unexpected body %v", body)
		}
		_, hasDetail := body["detail"]
		if hasDetail != dev {
			t.Fatalf("development=%v: detail present=%v", dev, hasDetail)
		}
		if dev && body["detail"] != "boom" {
			t.Fatalf("unexpected detail %v", body["detail"])
		}
	}
}
