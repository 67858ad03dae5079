package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Local is the no-backend fallback store: a single JSON file of string
// key-value pairs, one key per collection, each value a serialized document
// array. It mirrors the browser localStorage layout the dashboard's demo
// mode used, so the same records survive a later move to the remote store.
//
// Malformed state never crashes anything: a collection that fails to parse
// reads as empty. The file is exclusively owned by this process; a single
// mutex serializes access.
type Local struct {
	mu    sync.Mutex
	path  string
	log   *zap.Logger
	seeds map[string][]Document

	lastID int64 // collision guard for time-based ids
}

const localKeyPrefix = "community_site_"

// NewLocal opens (or lazily creates) the fallback store at path. Seeds, if
// given, are returned and persisted the first time an unseen collection is
// read, matching demo-mode behavior.
func NewLocal(path string, log *zap.Logger, seeds map[string][]Document) *Local {
	if log == nil {
		log = zap.NewNop()
	}
	return &Local{path: path, log: log, seeds: seeds}
}

func (l *Local) List(ctx context.Context, collection string) ([]Document, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.load(collection), nil
}

func (l *Local) Get(ctx context.Context, collection, id string) (Document, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, doc := range l.load(collection) {
		if docID(doc) == id {
			return doc, nil
		}
	}
	return nil, ErrNotFound
}

func (l *Local) Create(ctx context.Context, collection string, doc Document) (Document, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	docs := l.load(collection)

	created := make(Document, len(doc))
	for k, v := range doc {
		created[k] = v
	}
	if id, _ := created["id"].(string); id == "" {
		created["id"] = l.nextID()
	}

	docs = append(docs, created)
	if err := l.save(collection, docs); err != nil {
		return nil, err
	}
	return created, nil
}

func (l *Local) Update(ctx context.Context, collection, id string, fields Document) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	docs := l.load(collection)
	for i, doc := range docs {
		if docID(doc) != id {
			continue
		}
		for k, v := range fields {
			if k == "id" {
				continue
			}
			doc[k] = v
		}
		docs[i] = doc
		return l.save(collection, docs)
	}
	return ErrNotFound
}

func (l *Local) Delete(ctx context.Context, collection, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	docs := l.load(collection)
	kept := docs[:0]
	for _, doc := range docs {
		if docID(doc) != id {
			kept = append(kept, doc)
		}
	}
	if len(kept) == len(docs) {
		return nil // idempotent: nothing to remove
	}
	return l.save(collection, kept)
}

// nextID assigns a time-based id, bumped past the previous one when two
// creates land in the same millisecond.
func (l *Local) nextID() string {
	ms := time.Now().UnixMilli()
	if ms <= l.lastID {
		ms = l.lastID + 1
	}
	l.lastID = ms
	return strconv.FormatInt(ms, 10)
}

// load returns the collection's documents, seeding it on first access and
// treating any malformed state as empty. Callers hold the mutex.
func (l *Local) load(collection string) []Document {
	kv := l.readFile()

	raw, ok := kv[localKeyPrefix+collection]
	if !ok {
		if seed := l.seeds[collection]; len(seed) > 0 {
			if err := l.writeCollection(kv, collection, seed); err != nil {
				l.log.Warn("could not persist seed data", zap.String("collection", collection), zap.Error(err))
			}
			return append([]Document(nil), seed...)
		}
		return nil
	}

	var docs []Document
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		l.log.Warn("malformed local collection, treating as empty",
			zap.String("collection", collection), zap.Error(err))
		return nil
	}
	return docs
}

func (l *Local) save(collection string, docs []Document) error {
	return l.writeCollection(l.readFile(), collection, docs)
}

func (l *Local) writeCollection(kv map[string]string, collection string, docs []Document) error {
	if docs == nil {
		docs = []Document{}
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshal %s -> %w", collection, err)
	}
	kv[localKeyPrefix+collection] = string(data)
	return l.flush(kv)
}

// readFile loads the whole key-value file; a missing or corrupt file is an
// empty store, never an error.
func (l *Local) readFile() map[string]string {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.log.Warn("could not read local store", zap.Error(err))
		}
		return map[string]string{}
	}

	var kv map[string]string
	if err := json.Unmarshal(data, &kv); err != nil {
		l.log.Warn("malformed local store file, starting empty", zap.Error(err))
		return map[string]string{}
	}
	return kv
}

func (l *Local) flush(kv map[string]string) error {
	data, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal local store -> %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir -> %w", err)
		}
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write local store -> %w", err)
	}
	return nil
}

func docID(doc Document) string {
	id, _ := doc["id"].(string)
	return id
}
