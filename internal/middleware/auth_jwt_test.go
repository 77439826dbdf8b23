package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(BearerCaller(testSecret))
	app.Get("/open", func(c *fiber.Ctx) error {
		if id, ok := CallerID(c); ok {
			return c.SendString(id.Hex())
		}
		return c.SendString("")
	})
	app.Get("/closed", RequireCaller(), func(c *fiber.Ctx) error {
		id, _ := CallerID(c)
		return c.SendString(id.Hex())
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestBearerCaller_ValidToken(t *testing.T) {
	uid := bson.NewObjectID().Hex()
	token := sign(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(time.Hour).Unix(),
	}, []byte(testSecret))

	status, body := get(t, newApp(), "/closed", token)
	if status != fiber.StatusOK || body != uid {
		t.Fatalf("expected 200 %s, got %d %q", uid, status, body)
	}
}

func TestBearerCaller_SubjectFallback(t *testing.T) {
	uid := bson.NewObjectID().Hex()
	token := sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": uid}, []byte(testSecret))

	if status, body := get(t, newApp(), "/open", token); status != fiber.StatusOK || body != uid {
		t.Fatalf("expected uid from sub, got %d %q", status, body)
	}
}

func TestBearerCaller_NoTokenPassesThrough(t *testing.T) {
	app := newApp()
	if status, body := get(t, app, "/open", ""); status != fiber.StatusOK || body != "" {
		t.Fatalf("expected anonymous pass-through, got %d %q", status, body)
	}
	if status, _ := get(t, app, "/closed", ""); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 from RequireCaller, got %d", status)
	}
}

func TestBearerCaller_Rejects(t *testing.T) {
	uid := bson.NewObjectID().Hex()
	cases := map[string]string{
		"wrong secret": sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"uid": uid}, []byte("other")),
		"expired": sign(t, jwt.SigningMethodHS256, jwt.MapClaims{
			"uid": uid,
			"exp": time.Now().Add(-time.Hour).Unix(),
		}, []byte(testSecret)),
		"no uid":  sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"name": "x"}, []byte(testSecret)),
		"garbage": "not-a-token",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if status, _ := get(t, newApp(), "/open", token); status != fiber.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", status)
			}
		})
	}
}

func TestBearerCaller_NonObjectIDUID(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"uid": "not-hex"}, []byte(testSecret))

	// rejected before any route runs, open or not
	for _, path := range []string{"/open", "/closed"} {
		if status, _ := get(t, newApp(), path, token); status != fiber.StatusUnauthorized {
			t.Fatalf("%s: expected 401 for a non ObjectID uid, got %d", path, status)
		}
	}
}

func TestBearerCaller_RejectsOtherAlgorithms(t *testing.T) {
	uid := bson.NewObjectID().Hex()
	token := sign(t, jwt.SigningMethodHS512, jwt.MapClaims{"uid": uid}, []byte(testSecret))

	if status, _ := get(t, newApp(), "/open", token); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for HS512, got %d", status)
	}
}
