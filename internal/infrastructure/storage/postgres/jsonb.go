package postgres

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"
)

// decodeJSONB fills dst from a stored jsonb column. A malformed value
// leaves dst at its defaults and is logged at Warn only; it never
// surfaces to the caller.
func decodeJSONB[T any](log *slog.Logger, raw []byte, dst *T, field, recordID string) {
	if len(raw) == 0 {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("malformed stored field, substituting defaults",
			"field", field, "record_id", recordID, "error", err)
		return
	}
	*dst = v
}

// encodeJSONB marshals a nested value for a jsonb column.
func encodeJSONB(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode jsonb: %w", err)
	}
	return b, nil
}
