package content

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/studioflow/portfolio-backend/appwrite"
	"github.com/studioflow/portfolio-backend/config"
)

// fakeStore is an in-memory stand-in for the record store's REST API. It
// applies equal/search/limit/offset queries to fixture documents so service
// tests exercise real filter semantics end to end.
type fakeStore struct {
	server      *httptest.Server
	collections map[string][]map[string]any
	failAll     bool

	mu        sync.Mutex
	requested []string // document IDs point-looked-up, in order of arrival
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()

	store := &fakeStore{collections: make(map[string][]map[string]any)}
	store.server = httptest.NewServer(http.HandlerFunc(store.handle))
	t.Cleanup(store.server.Close)
	return store
}

func (f *fakeStore) config() config.Appwrite {
	return config.Appwrite{
		Endpoint:           f.server.URL,
		ProjectID:          "test-project",
		DatabaseID:         "db",
		ProjectsCollection: "projects",
		SkillsCollection:   "skills",
		MessagesCollection: "messages",
		AssetsBucket:       "project-assets",
	}
}

func (f *fakeStore) client() *appwrite.Client {
	return appwrite.NewClient(f.config())
}

func (f *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	if f.failAll {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message":"Internal server error","code":500,"type":"general_unknown"}`)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// /databases/{db}/collections/{col}/documents[/{id}]
	if len(parts) < 5 || parts[0] != "databases" || parts[2] != "collections" {
		http.NotFound(w, r)
		return
	}
	collection := parts[3]

	if len(parts) == 6 {
		docID := parts[5]
		f.mu.Lock()
		f.requested = append(f.requested, docID)
		f.mu.Unlock()
		for _, doc := range f.collections[collection] {
			if doc["$id"] == docID {
				json.NewEncoder(w).Encode(doc)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Document with the requested ID could not be found.","code":404,"type":"document_not_found"}`)
		return
	}

	docs := f.applyQueries(f.collections[collection], r.URL.Query()["queries[]"])
	json.NewEncoder(w).Encode(map[string]any{
		"total":     len(docs),
		"documents": docs,
	})
}

func (f *fakeStore) applyQueries(docs []map[string]any, rawQueries []string) []map[string]any {
	filtered := docs
	limit, offset := -1, 0

	for _, raw := range rawQueries {
		var q struct {
			Method    string `json:"method"`
			Attribute string `json:"attribute"`
			Values    []any  `json:"values"`
		}
		if err := json.Unmarshal([]byte(raw), &q); err != nil {
			continue
		}

		switch q.Method {
		case "equal":
			var kept []map[string]any
			for _, doc := range filtered {
				if len(q.Values) > 0 && doc[q.Attribute] == q.Values[0] {
					kept = append(kept, doc)
				}
			}
			filtered = kept
		case "search":
			term, _ := q.Values[0].(string)
			var kept []map[string]any
			for _, doc := range filtered {
				if fieldContains(doc[q.Attribute], term) {
					kept = append(kept, doc)
				}
			}
			filtered = kept
		case "limit":
			if n, ok := q.Values[0].(float64); ok {
				limit = int(n)
			}
		case "offset":
			if n, ok := q.Values[0].(float64); ok {
				offset = int(n)
			}
		}
	}

	if offset > len(filtered) {
		offset = len(filtered)
	}
	filtered = filtered[offset:]
	if limit >= 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}
	return filtered
}

func fieldContains(field any, term string) bool {
	switch v := field.(type) {
	case string:
		return strings.Contains(v, term)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.Contains(s, term) {
				return true
			}
		}
	}
	return false
}
