package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fitness_tracker/internal/api"
	"fitness_tracker/internal/chat"
	"fitness_tracker/internal/db/dbtest"
	"fitness_tracker/internal/domain"
	"fitness_tracker/internal/middleware"
	"fitness_tracker/internal/repository"
	"fitness_tracker/internal/service"
	"fitness_tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type server struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
	signer *utils.SessionSigner
}

func newServer(t *testing.T) *server {
	t.Helper()
	gdb := dbtest.Seeded(t)
	now := func() time.Time { return time.Date(2026, 5, 20, 9, 0, 0, 0, time.Local) }
	svc := service.NewFitnessService(repository.NewStore(gdb), service.WithClock(now), service.WithBcryptCost(bcrypt.MinCost))
	signer := utils.NewSessionSigner("test-secret", time.Hour)
	router, err := api.NewRouter(api.Deps{Service: svc, Signer: signer})
	require.NoError(t, err)
	return &server{t: t, router: router, db: gdb, signer: signer}
}

func (s *server) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (s *server) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req, cookies...)
}

func (s *server) postJSON(path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, cookies...)
}

func registration(email string) url.Values {
	return url.Values{
		"username": {strings.Split(email, "@")[0]},
		"email":    {email},
		"password": {"hunter22"},
		"height":   {"180"},
		"weight":   {"81"},
		"goal":     {"lose_weight"},
	}
}

// login registers and logs in a user, returning the session cookie
func (s *server) login(email string) *http.Cookie {
	s.t.Helper()
	w := s.postForm("/register", registration(email))
	require.Equal(s.t, http.StatusFound, w.Code)
	w = s.postForm("/login", url.Values{"email": {email}, "password": {"hunter22"}})
	require.Equal(s.t, http.StatusFound, w.Code)
	session := cookie(w, middleware.SessionCookie)
	require.NotNil(s.t, session)
	return session
}

func cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func flash(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	c := cookie(w, "flash")
	require.NotNil(t, c, "expected a flash message")
	msg, err := url.QueryUnescape(c.Value)
	require.NoError(t, err)
	return msg
}

func TestIndex(t *testing.T) {
	s := newServer(t)
	w := s.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fitness Tracker")
}

func TestRegisterFlow(t *testing.T) {
	s := newServer(t)

	w := s.get("/register")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="lose_weight"`)

	w = s.postForm("/register", registration("ann@example.com"))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "Registration successful! Please login.", flash(t, w))

	// The flash is shown once on the next page
	w = s.get("/login", cookie(w, "flash"))
	assert.Contains(t, w.Body.String(), "Registration successful! Please login.")
	assert.Less(t, cookie(w, "flash").MaxAge, 0)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newServer(t)
	require.Equal(t, http.StatusFound, s.postForm("/register", registration("ann@example.com")).Code)

	form := registration("ann@example.com")
	form.Set("username", "another")
	w := s.postForm("/register", form)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")

	var n int64
	require.NoError(t, s.db.Model(&domain.User{}).Where("email = ?", "ann@example.com").Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestRegisterInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"non-numeric height", "height", "tall"},
		{"missing email", "email", ""},
		{"negative weight", "weight", "-80"},
		{"unknown goal", "goal", "bulk"},
	}
	s := newServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := registration("bob@example.com")
			form.Set(tt.field, tt.value)
			w := s.postForm("/register", form)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid input")
		})
	}
}

func TestLogin(t *testing.T) {
	s := newServer(t)
	require.Equal(t, http.StatusFound, s.postForm("/register", registration("ann@example.com")).Code)

	w := s.postForm("/login", url.Values{"email": {"ann@example.com"}, "password": {"hunter22"}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	session := cookie(w, middleware.SessionCookie)
	require.NotNil(t, session)
	claims, err := s.signer.Parse(session.Value)
	require.NoError(t, err)
	assert.Equal(t, "ann", claims.Username)

	for _, form := range []url.Values{
		{"email": {"ann@example.com"}, "password": {"wrong-pass"}},
		{"email": {"nobody@example.com"}, "password": {"hunter22"}},
	} {
		w := s.postForm("/login", form)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
		assert.Nil(t, cookie(w, middleware.SessionCookie))
	}
}

func TestLogout(t *testing.T) {
	s := newServer(t)
	session := s.login("ann@example.com")

	w := s.get("/logout", session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Less(t, cookie(w, middleware.SessionCookie).MaxAge, 0)
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	s := newServer(t)
	for _, path := range []string{"/dashboard", "/exercises", "/yoga", "/diet", "/chatbot"} {
		w := s.get(path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	w := s.get("/progress_data")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Not logged in"}`, w.Body.String())

	w = s.postJSON("/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboard(t *testing.T) {
	s := newServer(t)
	session := s.login("ann@example.com")

	w := s.postForm("/log_meal", url.Values{"meal_id": {"1"}, "quantity": {"2"}}, session)
	require.Equal(t, http.StatusFound, w.Code)
	w = s.postForm("/log_exercise", url.Values{"exercise_id": {"6"}, "duration": {"10"}}, session)
	require.Equal(t, http.StatusFound, w.Code)
	w = s.postForm("/log_exercise", url.Values{"exercise_id": {"11"}, "duration": {"10"}}, session)
	require.Equal(t, http.StatusFound, w.Code)

	w = s.get("/dashboard", session)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "BMI <strong>25.0</strong> Overweight")
	assert.Contains(t, body, "Consumed 500 kcal")
	assert.Contains(t, body, "Burned 200 kcal")
	assert.Contains(t, body, "Net <strong>300</strong> kcal")
}

func TestUpdateProgress(t *testing.T) {
	s := newServer(t)
	session := s.login("ann@example.com")

	w := s.postForm("/update_progress", url.Values{"weight": {"79.5"}, "notes": {"week one"}}, session)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Equal(t, "Progress updated successfully!", flash(t, w))

	w = s.get("/progress_data", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dates":["2026-05-20"],"weights":[79.5]}`, w.Body.String())

	w = s.postForm("/update_progress", url.Values{"weight": {"heavy"}}, session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "Invalid input", flash(t, w))
}

func TestProgressDataEmpty(t *testing.T) {
	s := newServer(t)
	session := s.login("ann@example.com")

	w := s.get("/progress_data", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"dates":[],"weights":[]}`, w.Body.String())
}

func TestLogExercise(t *testing.T) {
	s := newServer(t)
	session := s.login("ann@example.com")

	w := s.postForm("/log_exercise", url.Values{"exercise_id": {"1"}, "duration": {"10"}}, session)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/exercises", w.Header().Get("Location"))
	assert.Equal(t, "Logged Push-ups for 10 minutes!", flash(t, w))

	var logs []domain.ExerciseLog
	require.NoError(t, s.db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, 80.0, logs[0].CaloriesBurned)

	w = s.postForm("/log_exercise", url.Values{"exercise_id": {"999"}, "duration": {"10"}}, session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "Exercise not found", flash(t, w))

	w = s.postForm("/log_exercise", url.Values{"exercise_id": {"1"}, "duration": {"ten"}}, session)
	assert.Equal(t, "Invalid input", flash(t, w))

	require.NoError(t, s.db.Find(&logs).Error)
	assert.Len(t, logs, 1)
}

func TestLogMeal(t *testing.T) {
	s := newServer(t)
	session := s.login("ann@example.com")

	w := s.postForm("/log_meal", url.Values{"meal_id": {"1"}, "quantity": {"2"}}, session)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/diet", w.Header().Get("Location"))
	assert.Equal(t, "Logged Oatmeal with Berries!", flash(t, w))

	var logs []domain.MealLog
	require.NoError(t, s.db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, 500.0, logs[0].Calories)

	w = s.postForm("/log_meal", url.Values{"meal_id": {"404"}, "quantity": {"1"}}, session)
	assert.Equal(t, "Meal not found", flash(t, w))
}

func TestCatalogPages(t *testing.T) {
	s := newServer(t)
	session := s.login("ann@example.com")

	w := s.get("/exercises", session)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Push-ups")
	assert.Less(t, strings.Index(body, "<h2>Strength</h2>"), strings.Index(body, "<h2>Cardio</h2>"))

	w = s.get("/yoga", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Crow Pose")

	w = s.get("/diet", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Meals for your goal: Lose weight")
	assert.Contains(t, w.Body.String(), "Oatmeal with Berries")

	w = s.get("/chatbot", session)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChat(t *testing.T) {
	s := newServer(t)
	session := s.login("ann@example.com")

	w := s.postJSON("/chat", `{"message":"I want a Weight Loss plan"}`, session)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, chat.Respond("weight loss"), resp.Response)
	assert.Contains(t, resp.Response, "caloric deficit")

	w = s.postJSON("/chat", `{"message":`, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaleSessionRedirects(t *testing.T) {
	s := newServer(t)
	token, err := s.signer.Issue(4242, "ghost")
	require.NoError(t, err)

	w := s.get("/dashboard", &http.Cookie{Name: middleware.SessionCookie, Value: token})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestHealthz(t *testing.T) {
	s := newServer(t)
	w := s.get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	w = s.get("/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
