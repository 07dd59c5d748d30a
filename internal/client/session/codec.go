package session

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/integrasalud/affiliate-client/internal/client/models"
	"github.com/integrasalud/affiliate-client/internal/common"
)

// EncodeBlob serializes v for storage. Strings are stored as-is, every other
// value is JSON encoded.
func EncodeBlob(v any) ([]byte, error) {
	if s, ok := v.(string); ok {
		return []byte(s), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrMalformedRecord, err)
	}
	return b, nil
}

// EncodeRecord stores the record as a one-element array, the shape the mobile
// app writes for the same slot.
func EncodeRecord(rec *models.UserRecord) ([]byte, error) {
	return EncodeBlob([]models.UserRecord{*rec})
}

// DecodeRecord parses a session blob written by EncodeRecord or by the mobile
// app. It accepts an array (first element wins) or a single object. An empty
// blob or an empty array yields (nil, nil); anything else that does not decode
// is reported as common.ErrMalformedRecord.
func DecodeRecord(data []byte) (*models.UserRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] {
	case '[':
		var list []models.UserRecord
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrMalformedRecord, err)
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	case '{':
		var rec models.UserRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrMalformedRecord, err)
		}
		return &rec, nil
	default:
		return nil, fmt.Errorf("%w: session blob is not a JSON record", common.ErrMalformedRecord)
	}
}
