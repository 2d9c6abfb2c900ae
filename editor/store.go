package editor

import (
	"encoding/json"
	"fmt"
	"time"

	"tripforge/rdx"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// Store keeps edit sessions in Redis so an open draft survives a page
// reload. One session per key, dropped on save or after the TTL.
type Store struct{}

func sessionKey(id string) string {
	return fmt.Sprintf("editor:session:%s", id)
}

func (Store) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return rdx.RdxSetTTL(sessionKey(s.ID), string(data), sessionTTL)
}

func (Store) Load(id string) (*Session, error) {
	data, err := rdx.RdxGet(sessionKey(id))
	if err == redis.Nil {
		return nil, fmt.Errorf("session %s not found", id)
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (Store) Delete(id string) error {
	return rdx.RdxDel(sessionKey(id))
}
