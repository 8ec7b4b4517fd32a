package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/crankerz/crankerz/internal/config"
	"github.com/crankerz/crankerz/internal/db"
	"github.com/crankerz/crankerz/internal/leaderboard"
	"github.com/crankerz/crankerz/internal/security"
	"github.com/crankerz/crankerz/internal/session"
	"github.com/crankerz/crankerz/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	engine := gin.New()
	RegisterRoutes(engine, Deps{
		DB:          conn,
		JWT:         config.JWTConfig{Secret: "test-secret", Expiry: time.Hour},
		RateLimit:   config.RateLimitConfig{AuthMax: 100, APIMax: 1000, Window: 15 * time.Minute},
		Recorder:    session.NewRecorder(conn, nil),
		Store:       store.NewService(conn),
		Leaderboard: leaderboard.NewService(conn, nil, "", 0),
	})
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var errEncode error
		payload, errEncode = json.Marshal(body)
		if errEncode != nil {
			t.Fatalf("marshal body: %v", errEncode)
		}
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func registerUser(t *testing.T, engine *gin.Engine, username string) string {
	t.Helper()
	resp := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"password": "hunter22",
		"country":  "Norway",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", username, resp.Code, resp.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if errDecode := json.Unmarshal(resp.Body.Bytes(), &body); errDecode != nil {
		t.Fatalf("decode register response: %v", errDecode)
	}
	if body.Token == "" {
		t.Fatalf("expected token in register response")
	}
	return body.Token
}

func TestRegister_DuplicateUsername(t *testing.T) {
	engine := newTestEngine(t)
	registerUser(t, engine, "cranker")

	resp := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "Cranker",
		"password": "hunter22",
		"country":  "Norway",
	})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegister_InvalidUsername(t *testing.T) {
	engine := newTestEngine(t)
	resp := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "x!",
		"password": "hunter22",
		"country":  "Norway",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	engine := newTestEngine(t)
	registerUser(t, engine, "cranker")

	resp := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "cranker",
		"password": "wrong-password",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	engine := newTestEngine(t)

	resp := doJSON(t, engine, http.MethodGet, "/api/user/profile", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/user/profile", "not-a-token", nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for garbage token, got %d", resp.Code)
	}

	expired, errIssue := security.IssueToken("test-secret", 1, "cranker", time.Minute, time.Now().Add(-time.Hour))
	if errIssue != nil {
		t.Fatalf("issue expired token: %v", errIssue)
	}
	resp = doJSON(t, engine, http.MethodGet, "/api/user/profile", expired, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.Code)
	}
}

func TestSessionAndProfileFlow(t *testing.T) {
	engine := newTestEngine(t)
	token := registerUser(t, engine, "cranker")

	resp := doJSON(t, engine, http.MethodPost, "/api/sessions", token, gin.H{"notes": "first"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("record session: status %d, body %s", resp.Code, resp.Body.String())
	}
	var sessionBody struct {
		Message string `json:"message"`
	}
	if errDecode := json.Unmarshal(resp.Body.Bytes(), &sessionBody); errDecode != nil {
		t.Fatalf("decode session response: %v", errDecode)
	}
	if sessionBody.Message != "Session recorded successfully! +10 XP" {
		t.Fatalf("unexpected message %q", sessionBody.Message)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/user/profile", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("profile: status %d", resp.Code)
	}
	var profile struct {
		TotalSessions int `json:"total_sessions"`
		Experience    int `json:"experience"`
		LevelProgress struct {
			Current    int `json:"current"`
			Needed     int `json:"needed"`
			Percentage int `json:"percentage"`
		} `json:"levelProgress"`
	}
	if errDecode := json.Unmarshal(resp.Body.Bytes(), &profile); errDecode != nil {
		t.Fatalf("decode profile: %v", errDecode)
	}
	if profile.TotalSessions != 1 {
		t.Fatalf("expected 1 session, got %d", profile.TotalSessions)
	}
	// One session plus the First Timer reward.
	if profile.Experience != 20 {
		t.Fatalf("expected 20 experience, got %d", profile.Experience)
	}
	if profile.LevelProgress.Needed != 100 || profile.LevelProgress.Percentage != 20 {
		t.Fatalf("unexpected level progress %+v", profile.LevelProgress)
	}
}

func TestFriendAddFeedsAchievementsAndLeaderboard(t *testing.T) {
	engine := newTestEngine(t)
	token := registerUser(t, engine, "cranker")
	registerUser(t, engine, "buddy")

	resp := doJSON(t, engine, http.MethodPost, "/api/friends/add", token, gin.H{"username": "buddy"})
	if resp.Code != http.StatusOK {
		t.Fatalf("add friend: status %d, body %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/sessions", token, nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("record session: status %d, body %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/achievements", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("achievements: status %d", resp.Code)
	}
	var achievements struct {
		Unlocked []struct {
			Name string `json:"name"`
		} `json:"unlocked"`
	}
	if errDecode := json.Unmarshal(resp.Body.Bytes(), &achievements); errDecode != nil {
		t.Fatalf("decode achievements: %v", errDecode)
	}
	found := false
	for _, achievement := range achievements.Unlocked {
		if achievement.Name == "Social Butterfly" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Social Butterfly unlocked, got %+v", achievements.Unlocked)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/leaderboard/friends", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("friends leaderboard: status %d", resp.Code)
	}
	var entries []struct {
		Username string `json:"username"`
	}
	if errDecode := json.Unmarshal(resp.Body.Bytes(), &entries); errDecode != nil {
		t.Fatalf("decode friends leaderboard: %v", errDecode)
	}
	if len(entries) != 1 || entries[0].Username != "buddy" {
		t.Fatalf("expected buddy on the friends board, got %+v", entries)
	}
}

func TestPurchase_InsufficientPoints(t *testing.T) {
	engine := newTestEngine(t)
	token := registerUser(t, engine, "cranker")

	// Fire Theme is item 1 in the seeded catalog: level 1, price 100.
	resp := doJSON(t, engine, http.MethodPost, "/api/store/purchase", token, gin.H{"itemId": 1})
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLeaderboardGlobal(t *testing.T) {
	engine := newTestEngine(t)
	token := registerUser(t, engine, "cranker")

	resp := doJSON(t, engine, http.MethodGet, "/api/leaderboard/global", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("leaderboard: status %d", resp.Code)
	}
	var entries []struct {
		Username string `json:"username"`
		Level    int    `json:"level"`
	}
	if errDecode := json.Unmarshal(resp.Body.Bytes(), &entries); errDecode != nil {
		t.Fatalf("decode leaderboard: %v", errDecode)
	}
	if len(entries) != 1 || entries[0].Username != "cranker" || entries[0].Level != 1 {
		t.Fatalf("unexpected leaderboard %+v", entries)
	}
}

func TestEquipmentUpdate(t *testing.T) {
	engine := newTestEngine(t)
	token := registerUser(t, engine, "cranker")

	resp := doJSON(t, engine, http.MethodPut, "/api/user/equipment", token, gin.H{
		"equipped_theme": "Fire Theme",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("equipment: status %d, body %s", resp.Code, resp.Body.String())
	}
	var user struct {
		EquippedTheme string `json:"equipped_theme"`
	}
	if errDecode := json.Unmarshal(resp.Body.Bytes(), &user); errDecode != nil {
		t.Fatalf("decode user: %v", errDecode)
	}
	if user.EquippedTheme != "Fire Theme" {
		t.Fatalf("expected equipped theme, got %+v", user)
	}
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(t)
	resp := doJSON(t, engine, http.MethodGet, "/api/health", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("health: status %d", resp.Code)
	}
}
