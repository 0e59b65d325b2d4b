package api

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/pvpsim/internal/config"
	"github.com/udisondev/pvpsim/internal/db"
	"github.com/udisondev/pvpsim/internal/ranking"
	"github.com/udisondev/pvpsim/internal/roster"
	"github.com/udisondev/pvpsim/internal/testutil"
)

type memBattles struct {
	mu    sync.Mutex
	recs  []db.BattleRecord
	err   error
	saved int
}

func (m *memBattles) Save(_ context.Context, rec *db.BattleRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.CreatedAt = time.Now()
	m.recs = append(m.recs, *rec)
	m.saved++
	return nil
}

func (m *memBattles) Get(_ context.Context, id uuid.UUID) (*db.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.recs {
		if m.recs[i].ID == id {
			rec := m.recs[i]
			return &rec, nil
		}
	}
	return nil, db.ErrNotFound
}

func (m *memBattles) ListRecent(_ context.Context, limit int) ([]db.BattleRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]db.BattleRecord, 0, limit)
	for i := len(m.recs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.recs[i])
	}
	return out, nil
}

type memRankings struct {
	mu       sync.Mutex
	byLimit  map[ranking.Limits][]ranking.Entry
	loadErr  error
	replaced int
}

func (m *memRankings) Replace(_ context.Context, lim ranking.Limits, entries []ranking.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byLimit == nil {
		m.byLimit = make(map[ranking.Limits][]ranking.Entry)
	}
	m.byLimit[lim] = entries
	m.replaced++
	return nil
}

func (m *memRankings) Load(_ context.Context, lim ranking.Limits) ([]ranking.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	entries, ok := m.byLimit[lim]
	if !ok {
		return nil, db.ErrNotFound
	}
	return entries, nil
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// newTestServer -- хелпер: сервер с in-memory хранилищами.
func newTestServer(t *testing.T) (*Server, *memBattles, *memRankings) {
	t.Helper()
	battles := &memBattles{}
	rankings := &memRankings{}
	cfg := config.DefaultSimulator()
	cfg.Ranking.Workers = 2
	s := NewServer(cfg, Stores{Battles: battles, Rankings: rankings})
	return s, battles, rankings
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func sampleRequest(seed uint64) battleRequest {
	return battleRequest{
		Team0: roster.Team{Name: "alice", Members: []roster.Entry{
			{Species: "Cresselia", CP: 1500, AttackIV: 2, DefenseIV: 15, StaminaIV: 13},
			{Species: "Umbreon", Level: 25, AttackIV: 15, DefenseIV: 15, StaminaIV: 15},
		}},
		Team1: roster.Team{Name: "bob", Members: []roster.Entry{
			{Species: "Swoobat", Level: 30, AttackIV: 15, DefenseIV: 15, StaminaIV: 15},
			{Species: "Bellossom", Level: 25, AttackIV: 15, DefenseIV: 15, StaminaIV: 15},
		}},
		Agent1: "random",
		Seed:   &seed,
	}
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	s.stores.Health = pingerFunc(func(context.Context) error { return testutil.ErrSimulated })
	w = do(t, s, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateBattle(t *testing.T) {
	s, battles, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/api/battles", sampleRequest(7))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[battleResponse](t, w)
	require.NotNil(t, resp.Record)
	assert.NotEqual(t, uuid.Nil, resp.Record.ID)
	assert.Equal(t, [2]string{"alice", "bob"}, resp.Record.Players)
	assert.Equal(t, [2]string{"basic", "random"}, resp.Record.Agents)
	assert.Equal(t, uint64(7), resp.Record.Seed)
	assert.Len(t, resp.Record.Fingerprint, 64)
	assert.NotEqual(t, "neutral", resp.Result)
	assert.Len(t, resp.Players[0].Team, 2)
	assert.Equal(t, 1500, resp.Players[0].Team[0].CP)
	assert.Equal(t, 1, battles.saved)

	again := decode[battleResponse](t, do(t, s, http.MethodPost, "/api/battles", sampleRequest(7)))
	assert.Equal(t, resp.Record.Fingerprint, again.Record.Fingerprint, "same seed replays the same battle")
	assert.NotEqual(t, resp.Record.ID, again.Record.ID)
}

func TestCreateBattle_BadRequests(t *testing.T) {
	unknownSpecies := sampleRequest(1)
	unknownSpecies.Team0.Members[0].Species = "Missingno"

	emptyTeam := sampleRequest(1)
	emptyTeam.Team1.Members = nil

	unknownAgent := sampleRequest(1)
	unknownAgent.Agent0 = "telepathic"

	tests := []struct {
		name string
		body any
		want string
	}{
		{"not json", "{", "decoding request"},
		{"unknown species", unknownSpecies, "team0"},
		{"empty team", emptyTeam, "team1"},
		{"unknown agent", unknownAgent, "agent0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, battles, _ := newTestServer(t)
			w := do(t, s, http.MethodPost, "/api/battles", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			assert.Zero(t, battles.saved)
		})
	}
}

func TestCreateBattle_StoreFailure(t *testing.T) {
	s, battles, _ := newTestServer(t)
	battles.err = testutil.ErrSimulated

	w := do(t, s, http.MethodPost, "/api/battles", sampleRequest(3))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), testutil.ErrSimulated.Error(), "internal errors are not leaked")
}

func TestGetBattle(t *testing.T) {
	s, _, _ := newTestServer(t)
	created := decode[battleResponse](t, do(t, s, http.MethodPost, "/api/battles", sampleRequest(11)))

	tests := []struct {
		name string
		path string
		code int
	}{
		{"stored", "/api/battles/" + created.Record.ID.String(), http.StatusOK},
		{"missing", "/api/battles/" + uuid.NewString(), http.StatusNotFound},
		{"malformed id", "/api/battles/42", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				rec := decode[db.BattleRecord](t, w)
				assert.Equal(t, created.Record.Fingerprint, rec.Fingerprint)
				assert.Equal(t, "alice", rec.Teams[0].Name)
			}
		})
	}
}

func TestListBattles(t *testing.T) {
	s, battles, _ := newTestServer(t)
	for seed := range uint64(3) {
		require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/api/battles", sampleRequest(seed)).Code)
	}

	got := decode[struct {
		Battles []db.BattleRecord `json:"battles"`
	}](t, do(t, s, http.MethodGet, "/api/battles?limit=2", nil))
	require.Len(t, got.Battles, 2)
	assert.Equal(t, battles.recs[2].ID, got.Battles[0].ID, "newest first")

	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/battles?limit=many", nil).Code)

	battles.err = testutil.ErrSimulated
	assert.Equal(t, http.StatusInternalServerError, do(t, s, http.MethodGet, "/api/battles", nil).Code)
}

type rankingResponse struct {
	CP      int             `json:"cp"`
	Level   float64         `json:"level"`
	Entries []ranking.Entry `json:"entries"`
}

func TestGetRankings_ComputesOnMiss(t *testing.T) {
	s, _, rankings := newTestServer(t)

	w := do(t, s, http.MethodGet, "/api/rankings?cp=500&level=40&top=5", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got := decode[rankingResponse](t, w)
	assert.Equal(t, 500, got.CP)
	assert.Equal(t, 40.0, got.Level)
	require.Len(t, got.Entries, 5)
	for i, e := range got.Entries {
		assert.Equal(t, i+1, e.Rank)
		assert.LessOrEqual(t, e.CP, 500)
	}
	assert.Equal(t, 1, rankings.replaced)

	// второй запрос отдается из хранилища
	w = do(t, s, http.MethodGet, "/api/rankings?cp=500&level=40&top=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[rankingResponse](t, w).Entries, 3)
	assert.Equal(t, 1, rankings.replaced)
}

func TestGetRankings_CallerGoneKeepsComputation(t *testing.T) {
	s, _, rankings := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/rankings?cp=500&level=40&top=5", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[rankingResponse](t, w).Entries, 5)
	assert.Equal(t, 1, rankings.replaced)
}

func TestGetRankings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		loadErr error
		code    int
	}{
		{"bad cp", "/api/rankings?cp=abc", nil, http.StatusBadRequest},
		{"bad level", "/api/rankings?level=high", nil, http.StatusBadRequest},
		{"bad top", "/api/rankings?top=x", nil, http.StatusBadRequest},
		{"zero cp", "/api/rankings?cp=0", nil, http.StatusBadRequest},
		{"level above max", "/api/rankings?cp=10000&level=60", nil, http.StatusBadRequest},
		{"level off grid", "/api/rankings?cp=1500&level=40.3", nil, http.StatusBadRequest},
		{"level below min", "/api/rankings?cp=1500&level=0.5", nil, http.StatusBadRequest},
		{"store failure", "/api/rankings?cp=1500", testutil.ErrSimulated, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, rankings := newTestServer(t)
			rankings.loadErr = tt.loadErr
			w := do(t, s, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	cfg := config.DefaultSimulator()
	cfg.HTTP.AllowOrigins = []string{"https://pvp.example.com"}
	s := NewServer(cfg, Stores{Battles: &memBattles{}, Rankings: &memRankings{}})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://pvp.example.com")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "https://pvp.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s, _, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
