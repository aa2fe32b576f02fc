package menu

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(seed []Item) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	h.RegisterRoutes(app)
	return app
}

func TestListMenu_SearchAndCategory(t *testing.T) {
	app := makeApp(sampleCatalog())

	// folded search should find the accented name
	req := httptest.NewRequest("GET", "/api/v1/menu?q=ga", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, "Gà chiên") {
		t.Fatalf("expected folded search to match accented name, body: %s", body)
	}
	if strings.Contains(body, "Tôm hấp") {
		t.Fatalf("unrelated item leaked into search results: %s", body)
	}

	// category tab restriction
	req2 := httptest.NewRequest("GET", "/api/v1/menu?category=drink", nil)
	res2, _ := app.Test(req2)
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "Bia") || strings.Contains(string(b2), "Gà chiên") {
		t.Fatalf("category filter wrong, body: %s", string(b2))
	}

	// unknown category is rejected
	req3 := httptest.NewRequest("GET", "/api/v1/menu?category=sushi", nil)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %d", res3.StatusCode)
	}
}

func TestCreateItem_Validation(t *testing.T) {
	app := makeApp(nil)

	req := httptest.NewRequest("POST", "/api/v1/menu", strings.NewReader(`{"name":"","price":-5,"categoryId":"sushi"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	for _, field := range []string{"name", "price", "categoryId"} {
		if !strings.Contains(string(b), field) {
			t.Fatalf("expected validation error for %q, body: %s", field, string(b))
		}
	}

	req2 := httptest.NewRequest("POST", "/api/v1/menu", strings.NewReader(`{"name":"Bia hơi","price":15000,"categoryId":"drink"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res2.StatusCode)
	}
}

func TestHideItem_SoftDelete(t *testing.T) {
	seed := []Item{{ID: "a", Name: "Bia", Price: 20000, CategoryID: "drink"}}
	app := makeApp(seed)

	req := httptest.NewRequest("DELETE", "/api/v1/menu/a", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}

	// hidden item no longer shows in the ordering view
	req2 := httptest.NewRequest("GET", "/api/v1/menu", nil)
	res2, _ := app.Test(req2)
	b, _ := io.ReadAll(res2.Body)
	if strings.Contains(string(b), "Bia") {
		t.Fatalf("hidden item still listed: %s", string(b))
	}

	// but the document itself still exists (soft delete)
	req3 := httptest.NewRequest("GET", "/api/v1/menu/a", nil)
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected soft-deleted item to remain fetchable, got %d", res3.StatusCode)
	}

	req4 := httptest.NewRequest("DELETE", "/api/v1/menu/missing", nil)
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", res4.StatusCode)
	}
}
