package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var ErrMalformed = errors.New("malformed backend response")

// Items normalizes a list-like body. Accepted shapes: an array, an object
// wrapping an array under "items", a single object (one row), and
// null or an empty body (no rows).
func Items(body []byte) ([]gjson.Result, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if !gjson.Valid(string(body)) {
		return nil, ErrMalformed
	}
	root := gjson.ParseBytes(body)
	switch {
	case root.IsArray():
		return root.Array(), nil
	case root.IsObject():
		if items := root.Get("items"); items.IsArray() {
			return items.Array(), nil
		}
		return []gjson.Result{root}, nil
	case root.Type == gjson.Null:
		return nil, nil
	default:
		return nil, ErrMalformed
	}
}

// DecodeList decodes every normalized item of body into T.
func DecodeList[T any](body []byte) ([]T, error) {
	items, err := Items(body)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal([]byte(item.Raw), &v); err != nil {
			return nil, fmt.Errorf("decode item %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Total reads a pagination total when the backend sends one.
func Total(body []byte) (int, bool) {
	if !gjson.Valid(string(body)) {
		return 0, false
	}
	t := gjson.GetBytes(body, "total")
	if t.Type != gjson.Number {
		return 0, false
	}
	return int(t.Int()), true
}
