package tipcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
)

// expiryGrace keeps entries readable until the cleanup job confirms the
// purge; the TTL is only a safety net behind PurgeExpired.
const expiryGrace = 6 * time.Hour

// ValkeyStore implements dailytips.Cache on a Valkey-compatible database.
// Day windows are canonical, so the entry key embeds the window start and
// SET NX is the atomic check-and-set that upholds the single-entry
// invariant.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "tips"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Lookup fetches the entry for the window containing the given instant.
func (s *ValkeyStore) Lookup(ctx context.Context, userID int64, at time.Time) (dailytips.CachedTipSet, bool, error) {
	window := dailytips.WindowFor(at)
	resp := s.client.Do(ctx, s.client.B().Get().Key(s.entryKey(userID, window.Start)).Build())
	payload, err := resp.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return dailytips.CachedTipSet{}, false, nil
		}
		return dailytips.CachedTipSet{}, false, err
	}
	var entry dailytips.CachedTipSet
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		return dailytips.CachedTipSet{}, false, err
	}
	return entry, true, nil
}

// Store writes the entry with SET NX. When another writer holds the key the
// stored entry is read back and returned instead.
func (s *ValkeyStore) Store(ctx context.Context, userID int64, window dailytips.DayWindow, tips dailytips.TipsByCategory) (dailytips.CachedTipSet, error) {
	entry := dailytips.CachedTipSet{
		UserID:    userID,
		Window:    window,
		Tips:      tips,
		CreatedAt: time.Now(),
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return dailytips.CachedTipSet{}, err
	}

	key := s.entryKey(userID, window.Start)
	ttl := time.Until(window.End.Add(expiryGrace))
	if ttl < time.Second {
		ttl = time.Second
	}
	cmd := s.client.B().Set().Key(key).Value(string(payload)).Nx().Ex(ttl).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			// Lost the race: return the winning entry.
			existing, found, readErr := s.Lookup(ctx, userID, window.Start)
			if readErr != nil {
				return dailytips.CachedTipSet{}, readErr
			}
			if found {
				return existing, nil
			}
			return entry, nil
		}
		return dailytips.CachedTipSet{}, err
	}
	return entry, nil
}

// PurgeExpired scans the key space and deletes entries whose window has
// fully elapsed. Window ends are derived from the key, so live windows can
// never match.
func (s *ValkeyStore) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	var (
		purged int64
		cursor uint64
	)
	for {
		resp := s.client.Do(ctx, s.client.B().Scan().Cursor(cursor).Match(s.prefix+":*").Count(200).Build())
		entry, err := resp.AsScanEntry()
		if err != nil {
			return purged, err
		}
		for _, key := range entry.Elements {
			windowStart, ok := s.windowStartFromKey(key)
			if !ok {
				continue
			}
			windowEnd := windowStart.Add(24*time.Hour - time.Second)
			if !windowEnd.Before(before) {
				continue
			}
			if err := s.client.Do(ctx, s.client.B().Del().Key(key).Build()).Error(); err != nil {
				return purged, err
			}
			purged++
		}
		cursor = entry.Cursor
		if cursor == 0 {
			return purged, nil
		}
	}
}

func (s *ValkeyStore) entryKey(userID int64, windowStart time.Time) string {
	return fmt.Sprintf("%s:%d:%d", s.prefix, userID, windowStart.Unix())
}

func (s *ValkeyStore) windowStartFromKey(key string) (time.Time, bool) {
	parts := strings.Split(key, ":")
	if len(parts) < 3 {
		return time.Time{}, false
	}
	unix, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(unix, 0), true
}

var _ dailytips.Cache = (*ValkeyStore)(nil)
