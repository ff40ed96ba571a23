package storage

import (
	"encoding/json"
	"fmt"

	"boxful-client/internal/domain"
)

// encodeSession flattens a session into its key/value entries.
// Empty entries are omitted.
func encodeSession(s domain.Session) (map[string]string, error) {
	out := make(map[string]string, len(sessionKeys))
	if s.Token != "" {
		out[TokenKey] = s.Token
	}
	if s.UserID != "" {
		out[UserIDKey] = s.UserID
	}
	if s.User != nil {
		b, err := json.Marshal(s.User)
		if err != nil {
			return nil, fmt.Errorf("encode session user: %w", err)
		}
		out[UserKey] = string(b)
	}
	return out, nil
}

func decodeSession(kv map[string]string) (domain.Session, error) {
	s := domain.Session{
		Token:  kv[TokenKey],
		UserID: kv[UserIDKey],
	}
	if raw, ok := kv[UserKey]; ok && raw != "" {
		var u domain.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return domain.Session{}, fmt.Errorf("decode session user: %w", err)
		}
		s.User = &u
	}
	return s, nil
}
