package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Salman534-web/WooCommerce-Enhancements/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

func newCheckoutRouter(settings datatypes.JSONMap) *gin.Engine {
	gin.SetMode(gin.TestMode)
	// 倒计时服务只有 urgency/extras 用，这两组用例不涉及
	h := NewCheckoutHandler(&fakeSettingsRepo{raw: settings}, nil)

	r := gin.New()
	r.POST("/checkout/breakdown", h.Breakdown)
	r.POST("/checkout/cod-notice", h.CODNotice)
	r.POST("/checkout/gateways", h.Gateways)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const cartWithCake = `{
	"items": [
		{"regular_price": 100, "sale_price": 75, "on_sale": true, "quantity": 2, "shipping_class": ""},
		{"regular_price": 40, "quantity": 1, "shipping_class": "cake"}
	],
	"coupon_discount": 20
}`

func TestBreakdown(t *testing.T) {
	t.Run("disabled renders empty", func(t *testing.T) {
		r := newCheckoutRouter(datatypes.JSONMap{})
		w := doPost(t, r, "/checkout/breakdown", cartWithCake)
		if w.Code != 200 || w.Body.Len() != 0 {
			t.Fatalf("got %d %q, want empty 200", w.Code, w.Body.String())
		}
	})

	t.Run("enabled renders rows", func(t *testing.T) {
		r := newCheckoutRouter(datatypes.JSONMap{models.OptEnableDiscountBreakdown: "1"})
		w := doPost(t, r, "/checkout/breakdown", cartWithCake)
		body := w.Body.String()
		// 原价 100*2+40 = 240，商品折扣 25*2 = 50，合计省 70
		for _, want := range []string{"৳240.00", "৳50.00", "৳20.00", "৳70.00", "Regular Price Total"} {
			if !strings.Contains(body, want) {
				t.Fatalf("missing %q in breakdown: %q", want, body)
			}
		}
	})
}

func TestCODNotice(t *testing.T) {
	r := newCheckoutRouter(datatypes.JSONMap{models.OptEnableCODManagement: "1"})

	w := doPost(t, r, "/checkout/cod-notice", cartWithCake)
	if !strings.Contains(w.Body.String(), "❌") {
		t.Fatalf("cart with cake should be COD-unavailable: %q", w.Body.String())
	}

	w = doPost(t, r, "/checkout/cod-notice", `{"items":[{"regular_price":10,"quantity":1,"shipping_class":"toys"}]}`)
	if !strings.Contains(w.Body.String(), "✅") {
		t.Fatalf("clean cart should be COD-available: %q", w.Body.String())
	}
}

func TestGatewaysFilter(t *testing.T) {
	body := `{"cart":` + cartWithCake + `,"gateways":["cod","bkash","card"]}`

	decode := func(w *httptest.ResponseRecorder) []string {
		var resp struct {
			Gateways []string `json:"gateways"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response: %v", err)
		}
		return resp.Gateways
	}

	t.Run("disallowed cart drops cod only", func(t *testing.T) {
		r := newCheckoutRouter(datatypes.JSONMap{models.OptEnableCODManagement: "1"})
		got := decode(doPost(t, r, "/checkout/gateways", body))
		if len(got) != 2 || got[0] != "bkash" || got[1] != "card" {
			t.Fatalf("gateways = %v, want [bkash card]", got)
		}
	})

	t.Run("feature off passes gateways through", func(t *testing.T) {
		r := newCheckoutRouter(datatypes.JSONMap{})
		got := decode(doPost(t, r, "/checkout/gateways", body))
		if len(got) != 3 {
			t.Fatalf("gateways = %v, want all three", got)
		}
	})
}
