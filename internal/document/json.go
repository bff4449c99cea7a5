package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// MarshalJSON renders v as JSON, keeping mapping keys in document order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindString:
		return writeJSONValue(buf, v.str)
	case KindScalar:
		return writeJSONValue(buf, jsonScalar(v.scalar))
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, k := range v.fields.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.fields.values[k].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("document: cannot marshal %s value", v.kind)
	}
	return nil
}

// jsonScalar maps scalars encoding/json cannot represent faithfully.
func jsonScalar(s any) any {
	switch t := s.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case []byte:
		return string(t)
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, bool, string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func writeJSONValue(buf *bytes.Buffer, x any) error {
	b, err := json.Marshal(x)
	if err != nil {
		// NaN and infinities have no JSON form.
		b, err = json.Marshal(fmt.Sprint(x))
		if err != nil {
			return err
		}
	}
	buf.Write(b)
	return nil
}
