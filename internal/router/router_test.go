package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"varmepumpe/internal/auth"
	"varmepumpe/internal/config"
	"varmepumpe/internal/db"
	"varmepumpe/internal/geocode"
	"varmepumpe/internal/handler"
	"varmepumpe/internal/metrics"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/service"
	"varmepumpe/internal/storage"
)

type testServer struct {
	e     *echo.Echo
	store repository.Store
	auth  service.AuthService
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	gdb, err := db.OpenInMemory()
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Env: "test", SessionTTL: time.Hour}
	store := repository.NewStore(gdb)
	collector := metrics.NewCollector()
	registry := prometheus.NewRegistry()
	registry.MustRegister(collector)

	sessions := auth.NewSessionService("test-secret", cfg.SessionTTL)
	sessionStore := auth.NewMemorySessionStore()

	authService := service.NewAuthService(store, auth.NewHasher(bcrypt.MinCost), sessions, sessionStore,
		service.NewLogResetSender(logger), service.AuthOptions{AutoApproveInstallers: true}, collector, logger)
	installerService := service.NewInstallerService(store, logger)
	postalCodes := service.NewPostalCodeService(store.PostalCodes(), storage.NewMemoryArchiver(), logger)

	h := Handlers{
		Auth:            handler.NewAuthHandler(authService, false, cfg.SessionTTL),
		Users:           handler.NewUserHandler(service.NewUserService(store.Users(), nil), authService, service.NewStatsService(store)),
		ServiceRequests: handler.NewServiceRequestHandler(service.NewRequestService(store, collector, logger), installerService),
		Installers:      handler.NewInstallerHandler(installerService, service.NewMatchingService(store.Installers()), authService),
		ServiceAreas:    handler.NewServiceAreaHandler(service.NewServiceAreaService(store), installerService),
		Customers:       handler.NewCustomerHandler(service.NewCustomerService(store, logger)),
		PostalCodes:     handler.NewPostalCodeHandler(postalCodes),
		Seed:            handler.NewSeedHandler(postalCodes),
		Locations:       handler.NewLocationHandler(geocode.New(geocode.Config{}, nil, collector, logger)),
	}

	e := echo.New()
	Register(e, cfg, h, Deps{
		Sessions: auth.NewMiddleware(sessions, sessionStore, logger),
		Metrics:  collector,
		Gatherer: registry,
		Logger:   logger,
	})
	return &testServer{e: e, store: store, auth: authService}
}

func (s *testServer) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/login", `{"username":"`+username+`","password":"`+password+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(t, rec)
}

func (s *testServer) admin(t *testing.T) *http.Cookie {
	t.Helper()
	_, err := s.auth.CreateAdmin(context.Background(), "admin", "admin@example.no", "secret123")
	require.NoError(t, err)
	return s.login(t, "admin", "secret123")
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", auth.CookieName)
	return nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

const installerRegistration = `{
	"username": "varme",
	"email": "post@varme.no",
	"password": "secret123",
	"role": "installer",
	"firstName": "Per",
	"lastName": "Hansen",
	"companyName": "Varme AS",
	"orgNumber": "123456789",
	"phone": "12345678",
	"county": "Oslo",
	"municipality": "Oslo"
}`

const bergenRequest = `{
	"fullName": "Kari Nordmann",
	"phone": "98765432",
	"address": "Bryggen 1",
	"postalCode": "5003",
	"city": "Bergen",
	"county": "Vestland",
	"municipality": "Bergen",
	"serviceType": "maintenance"
}`

func TestHealthz(t *testing.T) {
	s := setupServer(t)
	rec := s.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSessionLifecycle(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/register", `{"username":"kari","email":"kari@example.no","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "customer", decode(t, rec)["role"])

	rec = s.do(t, http.MethodGet, "/api/user", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "kari", body["username"])
	assert.NotContains(t, body, "passwordHash")

	rec = s.do(t, http.MethodPost, "/api/logout", "", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/user", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	s := setupServer(t)
	s.admin(t)

	wrong := s.do(t, http.MethodPost, "/api/login", `{"username":"admin","password":"nope"}`, nil)
	unknown := s.do(t, http.MethodPost, "/api/login", `{"username":"ghost","password":"nope"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, "invalid username or password", decode(t, wrong)["error"])
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestTamperedCookieIsAnonymous(t *testing.T) {
	s := setupServer(t)
	rec := s.do(t, http.MethodGet, "/api/user", "", &http.Cookie{Name: auth.CookieName, Value: "not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGating(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodGet, "/api/service-requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/register", `{"username":"kari","email":"kari@example.no","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	customer := sessionCookie(t, rec)

	rec = s.do(t, http.MethodGet, "/api/service-requests", "", customer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec)["code"])

	rec = s.do(t, http.MethodGet, "/api/service-requests", "", s.admin(t))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	s := setupServer(t)
	rec := s.do(t, http.MethodPost, "/api/register", `{"username":"evil","email":"evil@example.no","password":"secret123","role":"admin"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec)["code"])
}

func TestOverlongPasswordIsValidationError(t *testing.T) {
	s := setupServer(t)
	long := strings.Repeat("x", 80)

	rec := s.do(t, http.MethodPost, "/api/register", `{"username":"kari","email":"kari@example.no","password":"`+long+`"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Contains(t, body["fields"], "password")

	rec = s.do(t, http.MethodPost, "/api/register", `{"username":"kari","email":"kari@example.no","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = s.do(t, http.MethodPut, "/api/user/password", `{"currentPassword":"secret123","newPassword":"`+long+`"}`, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec)["code"])
}

func TestCreateInstallerProfile(t *testing.T) {
	s := setupServer(t)
	profile := `{"companyName":"Kari Varme AS","orgNumber":"987654321","contactPerson":"Kari Nordmann",` +
		`"email":"post@karivarme.no","phone":"12345678","county":"Vestland","municipality":"Bergen"}`

	rec := s.do(t, http.MethodPost, "/api/installers", profile, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/register", `{"username":"kari","email":"kari@example.no","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = s.do(t, http.MethodGet, "/api/installers/me", "", cookie)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/installers", profile, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, false, created["approved"])

	// the same session now carries the installer role
	rec = s.do(t, http.MethodGet, "/api/installers/me", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kari Varme AS", decode(t, rec)["companyName"])

	rec = s.do(t, http.MethodPost, "/api/installers", profile, cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PROFILE_EXISTS", decode(t, rec)["code"])

	rec = s.do(t, http.MethodPost, "/api/register", installerRegistration, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	other := s.do(t, http.MethodPost, "/api/register", `{"username":"ola","email":"ola@example.no","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, other.Code)

	taken := strings.Replace(profile, "987654321", "123456789", 1)
	taken = strings.Replace(taken, "Kari Varme AS", "Ola Varme AS", 1)
	rec = s.do(t, http.MethodPost, "/api/installers", taken, sessionCookie(t, other))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CONFLICT", decode(t, rec)["code"])
}

func TestDuplicateOrgNumber(t *testing.T) {
	s := setupServer(t)
	rec := s.do(t, http.MethodPost, "/api/register", installerRegistration, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	second := strings.NewReplacer(`"varme"`, `"kulde"`, "post@varme.no", "post@kulde.no", "Varme AS", "Kulde AS").Replace(installerRegistration)
	rec = s.do(t, http.MethodPost, "/api/register", second, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "CONFLICT", body["code"])
	assert.Contains(t, body["error"], "123456789")
}

func TestInstallerFlow(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodPost, "/api/register", installerRegistration, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	installer := sessionCookie(t, rec)

	rec = s.do(t, http.MethodPut, "/api/service-areas/me",
		`{"serviceAreas":[{"county":"Vestland","municipality":"Bergen"},{"county":"Vestland","municipality":"Bergen"}]}`, installer)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decodeList(t, rec), 1)

	rec = s.do(t, http.MethodGet, "/api/installers/municipality/Bergen", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	matches := decodeList(t, rec)
	require.Len(t, matches, 1)
	assert.Equal(t, "Varme AS", matches[0]["companyName"])
	assert.Equal(t, []interface{}{"Vestland"}, matches[0]["counties"])

	rec = s.do(t, http.MethodPost, "/api/service-requests", bergenRequest, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	request := decode(t, rec)
	assert.Equal(t, "open", request["status"])
	requestPath := "/api/service-requests/" + jsonID(request)

	rec = s.do(t, http.MethodGet, "/api/service-requests/installer", "", installer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	rec = s.do(t, http.MethodPost, requestPath+"/contact", `{"notes":"Kan komme i morgen","quoteAmount":"1500"}`, installer)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	admin := s.admin(t)
	rec = s.do(t, http.MethodGet, requestPath+"/contacts", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	rec = s.do(t, http.MethodGet, "/api/service-requests", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "contacted", decodeList(t, rec)[0]["status"])
}

func TestDeactivatedInstallerDisappears(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodPost, "/api/register", installerRegistration, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	installer := sessionCookie(t, rec)

	rec = s.do(t, http.MethodGet, "/api/installers/me", "", installer)
	require.Equal(t, http.StatusOK, rec.Code)
	id := jsonID(decode(t, rec))

	admin := s.admin(t)
	rec = s.do(t, http.MethodPost, "/api/installers/"+id+"/status", `{"active":false}`, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "installer deactivated", decode(t, rec)["message"])

	rec = s.do(t, http.MethodGet, "/api/installers/municipality/Oslo", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec))

	rec = s.do(t, http.MethodPost, "/api/login", `{"username":"varme","password":"secret123"}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCOUNT_DEACTIVATED", decode(t, rec)["code"])
}

func TestCustomerFlow(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodPost, "/api/register", `{"username":"kari","email":"kari@example.no","password":"secret123"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	customer := sessionCookie(t, rec)

	rec = s.do(t, http.MethodPost, "/api/customers",
		`{"fullName":"Kari Nordmann","email":"kari@example.no","municipality":"Bergen","county":"Vestland"}`, customer)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	profile := decode(t, rec)

	rec = s.do(t, http.MethodPost, "/api/heat-pumps",
		`{"customerId":`+jsonID(profile)+`,"brand":"Mitsubishi","model":"Hero","nextServiceDue":"2027-03-01T00:00:00Z"}`, customer)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/heat-pumps/customer/"+jsonID(profile), "", customer)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	rec = s.do(t, http.MethodGet, "/api/admin/stats", "", s.admin(t))
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)
	assert.Equal(t, float64(1), stats["totalCustomers"])
	assert.Equal(t, float64(service.SubscriptionPrice), stats["monthlyRevenue"])
}

func TestPostalCodeImport(t *testing.T) {
	s := setupServer(t)
	admin := s.admin(t)

	payload := `{"data":[
		{"postalCode":"0150","postPlace":"Oslo","municipality":"Oslo","county":"Oslo"},
		{"postalCode":"5003","postPlace":"Bergen","municipality":"Bergen","county":"Vestland"},
		{"postalCode":"","postPlace":"Voss","municipality":"Voss","county":"Vestland"}
	]}`
	rec := s.do(t, http.MethodPost, "/api/postal-codes/import", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/postal-codes/import", payload, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	result := decode(t, rec)
	assert.Equal(t, float64(2), result["created"])
	assert.Equal(t, float64(0), result["updated"])
	errs := result["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "row 3")

	rec = s.do(t, http.MethodGet, "/api/postal-codes/5003", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bergen", decode(t, rec)["postPlace"])

	rec = s.do(t, http.MethodGet, "/api/postal-codes/search?q=berg", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)

	rec = s.do(t, http.MethodGet, "/api/postal-codes/export", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,postalCode,postPlace,municipality,county\n"))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
}

func TestLocationsAndCoordinates(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodGet, "/api/locations/counties", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var counties []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counties))
	assert.Contains(t, counties, "Vestland")

	rec = s.do(t, http.MethodGet, "/api/locations/counties/Atlantis/municipalities", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/coordinates?address=Storgata+1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/coordinates?address=Storgata+1&postalCode=9999&city=Ingensteds", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, geocode.SourceDefault, body["source"])
	assert.Equal(t, 59.9139, body["lat"])
}

func TestUnknownRouteIsJSON(t *testing.T) {
	s := setupServer(t)
	rec := s.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec)["code"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := setupServer(t)
	s.do(t, http.MethodGet, "/healthz", "", nil)

	rec := s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `varmepumpe_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func jsonID(body map[string]interface{}) string {
	id, _ := body["id"].(float64)
	return strconv.FormatUint(uint64(id), 10)
}
