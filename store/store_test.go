package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leleka-app/leleka-go/client"
	"github.com/leleka-app/leleka-go/query"
)

// fakeAPI is an in-memory Leleka backend driving the store containers in
// tests: a session flag, a task list with an optional failure on status
// updates, and a paginated diary.
type fakeAPI struct {
	t   *testing.T
	srv *httptest.Server

	mu           sync.Mutex
	sessionOK    bool
	tasks        []client.Task
	failToggles  bool
	onToggle     func()                           // runs inside the status-update handler
	diaryPages   map[string][][]client.DiaryEntry // keyed by sort order
	deleteOK     bool
	updateResult *client.DiaryEntry

	probeCalls atomic.Int64
	taskCalls  atomic.Int64
	diaryCalls atomic.Int64
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{t: t, sessionOK: true, diaryPages: map[string][][]client.DiaryEntry{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/session", f.handleSession)
	mux.HandleFunc("/tasks", f.handleTasks)
	mux.HandleFunc("/tasks/status/", f.handleToggle)
	mux.HandleFunc("/diary", f.handleDiary)
	mux.HandleFunc("/diary/", f.handleDiaryEntry)
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) client() *client.Client { return client.New(f.srv.URL) }

func (f *fakeAPI) setSession(ok bool) {
	f.mu.Lock()
	f.sessionOK = ok
	f.mu.Unlock()
}

func (f *fakeAPI) setTasks(ts []client.Task) {
	f.mu.Lock()
	f.tasks = ts
	f.mu.Unlock()
}

func (f *fakeAPI) setFailToggles(fail bool) {
	f.mu.Lock()
	f.failToggles = fail
	f.mu.Unlock()
}

func (f *fakeAPI) setOnToggle(fn func()) {
	f.mu.Lock()
	f.onToggle = fn
	f.mu.Unlock()
}

func (f *fakeAPI) setDiaryPages(order client.SortOrder, pages [][]client.DiaryEntry) {
	f.mu.Lock()
	f.diaryPages[string(order)] = pages
	f.mu.Unlock()
}

func (f *fakeAPI) handleSession(w http.ResponseWriter, r *http.Request) {
	f.probeCalls.Add(1)
	f.mu.Lock()
	ok := f.sessionOK
	f.mu.Unlock()
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": ok})
}

func (f *fakeAPI) handleTasks(w http.ResponseWriter, r *http.Request) {
	f.taskCalls.Add(1)
	f.mu.Lock()
	ts := make([]client.Task, len(f.tasks))
	copy(ts, f.tasks)
	f.mu.Unlock()
	_ = json.NewEncoder(w).Encode(map[string][]client.Task{"tasks": ts})
}

func (f *fakeAPI) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Path[len("/tasks/status/"):]
	var body struct {
		IsDone bool `json:"isDone"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	hook := f.onToggle
	f.mu.Unlock()
	if hook != nil {
		hook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failToggles {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].IsDone = body.IsDone
			_ = json.NewEncoder(w).Encode(f.tasks[i])
			return
		}
	}
	http.NotFound(w, r)
}

func (f *fakeAPI) handleDiary(w http.ResponseWriter, r *http.Request) {
	f.diaryCalls.Add(1)
	q := r.URL.Query()
	order := q.Get("sortOrder")
	page := 1
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			page = n
		}
	}

	f.mu.Lock()
	pages := f.diaryPages[order]
	f.mu.Unlock()

	var notes []client.DiaryEntry
	if page >= 1 && page <= len(pages) {
		notes = pages[page-1]
	}
	total := 0
	for _, p := range pages {
		total += len(p)
	}
	_ = json.NewEncoder(w).Encode(client.DiaryListResponse{
		DiaryNotes: notes,
		Page:       page,
		TotalPages: len(pages),
		TotalCount: total,
	})
}

func (f *fakeAPI) setDeleteOK(ok bool) {
	f.mu.Lock()
	f.deleteOK = ok
	f.mu.Unlock()
}

func (f *fakeAPI) setUpdateResult(e *client.DiaryEntry) {
	f.mu.Lock()
	f.updateResult = e
	f.mu.Unlock()
}

// handleDiaryEntry serves DELETE and PUT on /diary/{id}.
func (f *fakeAPI) handleDiaryEntry(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	deleteOK := f.deleteOK
	updated := f.updateResult
	f.mu.Unlock()

	switch r.Method {
	case http.MethodDelete:
		if !deleteOK {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodPut:
		if updated == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(updated)
	default:
		http.NotFound(w, r)
	}
}

// harness bundles one fake API with a cache and the three containers.
type harness struct {
	api   *fakeAPI
	cache *query.Cache
	gate  *SessionGate
	board *TaskBoard
	feed  *DiaryFeed
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	api := newFakeAPI(t)
	c := api.client()
	cache := query.New()
	t.Cleanup(cache.Close)
	gate := NewSessionGate(cache, c, 0)
	return &harness{
		api:   api,
		cache: cache,
		gate:  gate,
		board: NewTaskBoard(cache, c, gate),
		feed:  NewDiaryFeed(cache, c, gate, 2),
	}
}

const (
	eventuallyTimeout = 2 * time.Second
	eventuallyTick    = 5 * time.Millisecond
)

func entry(id, title string) client.DiaryEntry {
	return client.DiaryEntry{ID: id, Title: title}
}
