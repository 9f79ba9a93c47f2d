package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petpal/internal/adapters/storage/memory"
	"petpal/internal/platform/metrics"
	"petpal/internal/ports/kv"
	"petpal/internal/router"

	"github.com/prometheus/client_golang/prometheus"
)

type reminderBody struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

type stateBody struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user"`
	Screen        string `json:"screen"`
	AvatarOpen    bool   `json:"avatar_open"`
	Profile       *struct {
		Name string `json:"name"`
	} `json:"profile"`
	Reminders []reminderBody `json:"reminders"`
	Points    int            `json:"points"`
}

func TestHTTP_EndToEnd_CareLoop(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Login de usuario nuevo => onboarding
	{
		st, body := doReq(t, ts.URL, "POST", "/session/login", "", map[string]any{"email": "Ana@Example.com"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			User    string `json:"user"`
			NewUser bool   `json:"new_user"`
			Screen  string `json:"screen"`
		}
		decode(t, body, &resp)
		if resp.User != "ana@example.com" || !resp.NewUser || resp.Screen != "profile" {
			t.Fatalf("unexpected login result: %+v", resp)
		}
	}

	// 2) Sin header, el puntero de sesión identifica al usuario
	{
		st, body := doReq(t, ts.URL, "GET", "/profile", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 before onboarding, got %d body=%s", st, string(body))
		}
	}

	// 3) Completa el perfil y la vista lo refleja
	{
		st, body := doReq(t, ts.URL, "PUT", "/profile", "", map[string]any{
			"name":  "  Milo ",
			"breed": "labrador",
			"age":   3,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 save profile, got %d body=%s", st, string(body))
		}
		var p struct {
			Name     string `json:"name"`
			Complete bool   `json:"complete"`
		}
		decode(t, body, &p)
		if p.Name != "Milo" || !p.Complete {
			t.Fatalf("unexpected profile: %+v", p)
		}

		s := getState(t, ts.URL)
		if s.Profile == nil || s.Profile.Name != "Milo" {
			t.Fatalf("dashboard did not pick up saved profile: %+v", s)
		}
	}

	// 4) Perfil inválido
	{
		st, _ := doReq(t, ts.URL, "PUT", "/profile", "", map[string]any{"name": "Milo", "age": 0})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for age 0, got %d", st)
		}
	}

	// 5) Historial sembrado + observación con consejo
	{
		st, body := doReq(t, ts.URL, "GET", "/health-log", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 health log, got %d body=%s", st, string(body))
		}
		var entries []map[string]any
		decode(t, body, &entries)
		if len(entries) != 2 {
			t.Fatalf("expected 2 seeded entries, got %d", len(entries))
		}

		st, body = doReq(t, ts.URL, "POST", "/health-log", "", map[string]any{
			"symptom": "Mild Vomiting this morning",
			"weight":  "46",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 append, got %d body=%s", st, string(body))
		}
		var resp struct {
			Advice struct {
				Kind    string `json:"kind"`
				Keyword string `json:"keyword"`
			} `json:"advice"`
			Entries []map[string]any `json:"entries"`
		}
		decode(t, body, &resp)
		if resp.Advice.Kind != "common" || resp.Advice.Keyword != "vomiting" {
			t.Fatalf("unexpected advice: %+v", resp.Advice)
		}
		if len(resp.Entries) != 3 {
			t.Fatalf("expected 3 entries after append, got %d", len(resp.Entries))
		}

		// 46 -> 49: ganancia de peso
		st, body = doReq(t, ts.URL, "POST", "/health-log/suggest", "", map[string]any{
			"symptom": "ate well",
			"weight":  "49",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 suggest, got %d body=%s", st, string(body))
		}
		var adv struct {
			Kind string `json:"kind"`
		}
		decode(t, body, &adv)
		if adv.Kind != "weight_gain" {
			t.Fatalf("expected weight_gain, got %q", adv.Kind)
		}

		st, _ = doReq(t, ts.URL, "POST", "/health-log", "", map[string]any{"symptom": "   "})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for blank symptom, got %d", st)
		}
	}

	// 6) Reminders sembrados en el login + 3 completados = 30 puntos
	var ids []string
	{
		st, body := doReq(t, ts.URL, "GET", "/reminders", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reminders, got %d body=%s", st, string(body))
		}
		var book struct {
			Reminders []reminderBody `json:"reminders"`
			Points    int            `json:"points"`
		}
		decode(t, body, &book)
		if len(book.Reminders) != 2 || book.Reminders[0].Task != "Feed morning meal" {
			t.Fatalf("unexpected seeded reminders: %+v", book.Reminders)
		}
		for _, r := range book.Reminders {
			ids = append(ids, r.ID)
		}

		st, body = doReq(t, ts.URL, "POST", "/reminders", "", map[string]any{"task": "Brush Milo", "time": "7:05"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create reminder, got %d body=%s", st, string(body))
		}
		var created reminderBody
		decode(t, body, &created)
		ids = append(ids, created.ID)

		st, _ = doReq(t, ts.URL, "POST", "/reminders", "", map[string]any{"task": "Nap", "time": "25:00"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for bad time, got %d", st)
		}
	}
	for i, id := range ids {
		st, body := doReq(t, ts.URL, "POST", "/reminders/"+id+"/complete", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete, got %d body=%s", st, string(body))
		}
		var c struct {
			Awarded int `json:"awarded"`
			Points  int `json:"points"`
		}
		decode(t, body, &c)
		if c.Awarded != 10 || c.Points != 10*(i+1) {
			t.Fatalf("unexpected completion #%d: %+v", i, c)
		}
	}
	{
		// completar de nuevo no vuelve a premiar
		st, body := doReq(t, ts.URL, "POST", "/reminders/"+ids[0]+"/complete", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 re-complete, got %d body=%s", st, string(body))
		}
		var c struct {
			Awarded int `json:"awarded"`
			Points  int `json:"points"`
		}
		decode(t, body, &c)
		if c.Awarded != 0 || c.Points != 30 {
			t.Fatalf("re-complete must not award: %+v", c)
		}

		st, _ = doReq(t, ts.URL, "POST", "/reminders/nope/complete", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown reminder, got %d", st)
		}

		if pts := getPoints(t, ts.URL, ""); pts != 30 {
			t.Fatalf("expected 30 points, got %d", pts)
		}
		if s := getState(t, ts.URL); s.Points != 30 {
			t.Fatalf("dashboard points out of sync: %d", s.Points)
		}
	}

	// 7) Avatar +5, botón de acción +10 y navegación
	{
		st, body := doReq(t, ts.URL, "POST", "/dashboard/avatar", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 avatar, got %d body=%s", st, string(body))
		}
		var s stateBody
		decode(t, body, &s)
		if s.Points != 35 || !s.AvatarOpen {
			t.Fatalf("unexpected state after avatar: %+v", s)
		}

		st, body = doReq(t, ts.URL, "POST", "/dashboard/navigate", "", map[string]any{"action": "Care Tips"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 action, got %d body=%s", st, string(body))
		}
		decode(t, body, &s)
		if s.Screen != "care-tips" || s.Points != 45 {
			t.Fatalf("unexpected state after action: %+v", s)
		}

		st, _ = doReq(t, ts.URL, "POST", "/dashboard/navigate", "", map[string]any{"screen": "settings"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown screen, got %d", st)
		}
		if pts := getPoints(t, ts.URL, ""); pts != 45 {
			t.Fatalf("unknown screen must not award, got %d", pts)
		}
	}

	// 8) Logout: sin puntero no hay usuario
	{
		st, _ := doReq(t, ts.URL, "POST", "/session/logout", "", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/reminders", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
		if s := getState(t, ts.URL); s.Authenticated || s.Screen != "login" || s.Points != 0 {
			t.Fatalf("view must reset on logout: %+v", s)
		}
	}

	// 9) Otro usuario no ve nada de ana
	{
		if pts := getPoints(t, ts.URL, "bob@example.com"); pts != 0 {
			t.Fatalf("bob must start at 0 points, got %d", pts)
		}
		st, body := doReq(t, ts.URL, "GET", "/reminders", "bob@example.com", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 bob reminders, got %d body=%s", st, string(body))
		}
		if strings.Contains(string(body), "Milo") {
			t.Fatalf("bob sees ana's data: %s", string(body))
		}
	}

	// 10) Ana vuelve: usuario recurrente, puntos intactos
	{
		st, body := doReq(t, ts.URL, "POST", "/session/login", "", map[string]any{"email": "ana@example.com"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			NewUser bool      `json:"new_user"`
			Screen  string    `json:"screen"`
			State   stateBody `json:"state"`
		}
		decode(t, body, &resp)
		if resp.NewUser || resp.Screen != "home" || resp.State.Points != 45 {
			t.Fatalf("unexpected returning login: %+v", resp)
		}
	}
}

func TestHTTP_Login_RejectsInvalidEmail(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	for _, email := range []string{"", "nope", "a@b", "two words@x.io"} {
		st, _ := doReq(t, ts.URL, "POST", "/session/login", "", map[string]any{"email": email})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", email, st)
		}
	}
	if s := getState(t, ts.URL); s.Authenticated {
		t.Fatalf("invalid login must not authenticate")
	}
}

func TestHTTP_RestoresPersistedSession(t *testing.T) {
	store := memory.NewStore()

	first := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	st, body := doReq(t, first.URL, "POST", "/session/login", "", map[string]any{"email": "ana@example.com"})
	first.Close()
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	second := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	defer second.Close()

	s := getState(t, second.URL)
	if !s.Authenticated || s.User != "ana@example.com" || s.Screen != "home" {
		t.Fatalf("expected restored session, got %+v", s)
	}
}

func TestHTTP_CorruptRecordIsTreatedAsEmpty(t *testing.T) {
	store := memory.NewStore()
	if err := store.Set(t.Context(), "reminders-ana@example.com", "{not json"); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/reminders", "ana@example.com", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 for corrupt record, got %d body=%s", st, string(body))
	}
	var book struct {
		Reminders []reminderBody `json:"reminders"`
		Points    int            `json:"points"`
	}
	decode(t, body, &book)
	if len(book.Reminders) != 0 || book.Points != 0 {
		t.Fatalf("corrupt record must load as empty, got %+v", book)
	}
}

func TestHTTP_ContentAndOps(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	var store kv.Store = metrics.InstrumentStore(memory.NewStore(), m)

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Store:    store,
		Metrics:  m,
		Registry: reg,
	}))
	defer ts.Close()

	if st, body := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected /health: %d %s", st, string(body))
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/tips?category=diet", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 tip, got %d body=%s", st, string(body))
		}
		var tip struct {
			Category string `json:"category"`
			Text     string `json:"text"`
		}
		decode(t, body, &tip)
		if tip.Category != "diet" || tip.Text == "" {
			t.Fatalf("unexpected tip: %+v", tip)
		}

		st, _ = doReq(t, ts.URL, "GET", "/tips?category=astrology", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown category, got %d", st)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/vets", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 vets, got %d body=%s", st, string(body))
		}
		var clinics []map[string]any
		decode(t, body, &clinics)
		if len(clinics) != 3 {
			t.Fatalf("expected 3 clinics, got %d", len(clinics))
		}

		st, body = doReq(t, ts.URL, "GET", "/vets/tip", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 vet tip, got %d body=%s", st, string(body))
		}
	}

	// genera métricas de login y store
	if st, _ := doReq(t, ts.URL, "POST", "/session/login", "", map[string]any{"email": "ana@example.com"}); st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d", st)
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		for _, name := range []string{"petpal_logins_total", "petpal_store_operations_total"} {
			if !strings.Contains(string(body), name) {
				t.Fatalf("metrics output missing %s", name)
			}
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 swagger doc, got %d", st)
		}
		var doc struct {
			Paths map[string]map[string]json.RawMessage `json:"paths"`
		}
		if err := json.Unmarshal(body, &doc); err != nil {
			t.Fatalf("swagger doc is not json: %v", err)
		}
		documented := map[string]string{
			"/session":                "get",
			"/session/login":          "post",
			"/session/logout":         "post",
			"/dashboard":              "get",
			"/dashboard/navigate":     "post",
			"/dashboard/avatar":       "post",
			"/profile":                "put",
			"/reminders/{reminderID}": "delete",
			"/points":                 "get",
		}
		for path, method := range documented {
			if _, ok := doc.Paths[path][method]; !ok {
				t.Fatalf("swagger doc missing %s %s", method, path)
			}
		}
		if _, ok := doc.Paths["/profile"]["get"]; !ok {
			t.Fatalf("swagger doc missing get /profile")
		}
	}
}

func getState(t *testing.T, baseURL string) stateBody {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", "/dashboard", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
	}
	var s stateBody
	decode(t, body, &s)
	return s
}

func getPoints(t *testing.T, baseURL, user string) int {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", "/points", user, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 points, got %d body=%s", st, string(body))
	}
	var resp struct {
		Points int `json:"points"`
	}
	decode(t, body, &resp)
	return resp.Points
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, userEmail string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userEmail != "" {
		req.Header.Set("X-User-Email", userEmail)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
