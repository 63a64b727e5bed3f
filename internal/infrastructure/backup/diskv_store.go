// Package backup persists unsaved field edits on local disk so that an editing session
// can recover them after an unexpected restart.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"estimate_editor/internal/domain/entities"
	"estimate_editor/internal/usecase/interfaces"

	"github.com/peterbourgon/diskv/v3"
)

const DefaultRetention = 24 * time.Hour

var ErrInvalidKey = errors.New("invalid backup key")

type record struct {
	Field   string    `json:"field"`
	Value   any       `json:"value"`
	SavedAt time.Time `json:"saved_at"`
}

// DiskStore is an IBackupStore backed by diskv.
//
// Keys map to <base>/<estimate>/<line>/<field>, each path component escaped.
type DiskStore struct {
	d         *diskv.Diskv
	retention time.Duration
}

var _ interfaces.IBackupStore = (*DiskStore)(nil)

func NewDiskStore(basePath string, retention time.Duration) *DiskStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &DiskStore{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      512 * 1024,
		}),
		retention: retention,
	}
}

func (s *DiskStore) Put(key interfaces.BackupKey, value entities.Value, at time.Time) error {
	k, err := toKey(key)
	if err != nil {
		return err
	}
	b, err := json.Marshal(record{Field: string(key.Field), Value: value.Interface(), SavedAt: at.UTC()})
	if err != nil {
		return err
	}
	return s.d.Write(k, b)
}

func (s *DiskStore) Get(key interfaces.BackupKey, now time.Time) (interfaces.BackupEntry, bool) {
	k, err := toKey(key)
	if err != nil || !s.d.Has(k) {
		return interfaces.BackupEntry{}, false
	}
	entry, err := s.read(k, key)
	if err != nil {
		log.Printf("[backup] unreadable entry key=%s err=%v", k, err)
		_ = s.d.Erase(k)
		return interfaces.BackupEntry{}, false
	}
	if s.expired(entry, now) {
		_ = s.d.Erase(k)
		return interfaces.BackupEntry{}, false
	}
	return entry, true
}

func (s *DiskStore) Delete(key interfaces.BackupKey) error {
	k, err := toKey(key)
	if err != nil {
		return err
	}
	if !s.d.Has(k) {
		return nil
	}
	return s.d.Erase(k)
}

// ListEstimate returns the live entries of an estimate, erasing expired ones on the way.
func (s *DiskStore) ListEstimate(estimateID string, now time.Time) ([]interfaces.BackupEntry, error) {
	prefix, err := segment(estimateID)
	if err != nil {
		return nil, err
	}
	var out []interfaces.BackupEntry
	for _, k := range s.keys(prefix + "/") {
		key, err := fromKey(k)
		if err != nil {
			continue
		}
		entry, err := s.read(k, key)
		if err != nil || s.expired(entry, now) {
			_ = s.d.Erase(k)
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *DiskStore) ClearEstimate(estimateID string) error {
	prefix, err := segment(estimateID)
	if err != nil {
		return err
	}
	var errs []error
	for _, k := range s.keys(prefix + "/") {
		if err := s.d.Erase(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Prune erases every expired entry and reports how many were removed.
func (s *DiskStore) Prune(now time.Time) (int, error) {
	removed := 0
	var errs []error
	for _, k := range s.keys("") {
		key, err := fromKey(k)
		if err != nil {
			continue
		}
		entry, err := s.read(k, key)
		if err == nil && !s.expired(entry, now) {
			continue
		}
		if err := s.d.Erase(k); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

func (s *DiskStore) keys(prefix string) []string {
	done := make(chan struct{})
	defer close(done)
	var out []string
	for k := range s.d.KeysPrefix(prefix, done) {
		out = append(out, k)
	}
	return out
}

func (s *DiskStore) read(k string, key interfaces.BackupKey) (interfaces.BackupEntry, error) {
	b, err := s.d.Read(k)
	if err != nil {
		return interfaces.BackupEntry{}, err
	}
	var rec record
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return interfaces.BackupEntry{}, err
	}
	v, err := entities.ValueFromAny(key.Field, rec.Value)
	if err != nil {
		return interfaces.BackupEntry{}, err
	}
	return interfaces.BackupEntry{Key: key, Value: v, SavedAt: rec.SavedAt}, nil
}

func (s *DiskStore) expired(entry interfaces.BackupEntry, now time.Time) bool {
	return now.Sub(entry.SavedAt) > s.retention
}

func toKey(key interfaces.BackupKey) (string, error) {
	if _, ok := key.Field.Spec(); !ok {
		return "", fmt.Errorf("%w: unknown field %q", ErrInvalidKey, key.Field)
	}
	estimate, err := segment(key.EstimateID)
	if err != nil {
		return "", err
	}
	line, err := segment(key.LineID)
	if err != nil {
		return "", err
	}
	return estimate + "/" + line + "/" + string(key.Field), nil
}

// segment escapes one path component. PathEscape keeps "." and "..", which would leave the base path.
func segment(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", ErrInvalidKey
	}
	esc := url.PathEscape(id)
	if esc == "." || esc == ".." {
		return "", fmt.Errorf("%w: reserved path component %q", ErrInvalidKey, id)
	}
	return esc, nil
}

func fromKey(k string) (interfaces.BackupKey, error) {
	parts := strings.Split(k, "/")
	if len(parts) != 3 {
		return interfaces.BackupKey{}, ErrInvalidKey
	}
	estimateID, err := url.PathUnescape(parts[0])
	if err != nil {
		return interfaces.BackupKey{}, err
	}
	lineID, err := url.PathUnescape(parts[1])
	if err != nil {
		return interfaces.BackupKey{}, err
	}
	field, err := entities.ParseField(parts[2])
	if err != nil {
		return interfaces.BackupKey{}, err
	}
	return interfaces.BackupKey{EstimateID: estimateID, LineID: lineID, Field: field}, nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}
