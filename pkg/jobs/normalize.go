package jobs

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/artem13815/smarthire-admin/pkg/backend"
)

// TypeIndex resolves job types by id and by case-insensitive name.
type TypeIndex struct {
	byID   map[string]JobType
	byName map[string]JobType
}

func NewTypeIndex(types []JobType) TypeIndex {
	ix := TypeIndex{byID: make(map[string]JobType, len(types)), byName: make(map[string]JobType, len(types))}
	for _, t := range types {
		ix.byID[t.ID] = t
		ix.byName[strings.ToLower(t.Name)] = t
	}
	return ix
}

// Name returns the type name for id, or "" for unknown ids.
func (ix TypeIndex) Name(id string) string { return ix.byID[id].Name }

// IDForName returns the id of the type named name, ignoring case.
func (ix TypeIndex) IDForName(name string) string {
	return ix.byName[strings.ToLower(strings.TrimSpace(name))].ID
}

// idOf renders a JSON id (number or string) as a string; "" when absent.
func idOf(r gjson.Result) string {
	switch r.Type {
	case gjson.Number, gjson.String:
		return strings.TrimSpace(r.String())
	default:
		return ""
	}
}

func firstID(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		if id := idOf(r.Get(p)); id != "" {
			return id
		}
	}
	return ""
}

// NormalizeTypes decodes a job type list. The id may come as "id" or
// "type_id"; entries lacking an id or a name are dropped.
func NormalizeTypes(body []byte) ([]JobType, error) {
	items, err := backend.Items(body)
	if err != nil {
		return nil, err
	}
	out := make([]JobType, 0, len(items))
	for _, item := range items {
		id := firstID(item, "id", "type_id")
		name := strings.TrimSpace(item.Get("name").String())
		if id == "" || name == "" {
			continue
		}
		out = append(out, JobType{ID: id, Name: name})
	}
	return out, nil
}

// NormalizePositions decodes a position list against the type index.
// The name may come as "name" or "position"; the type as a name string,
// an embedded {name, id|type_id} object, or only a "type_id" to look up.
// Positions without a name are dropped.
func NormalizePositions(body []byte, ix TypeIndex) ([]Posting, error) {
	items, err := backend.Items(body)
	if err != nil {
		return nil, err
	}
	out := make([]Posting, 0, len(items))
	for _, item := range items {
		p := normalizePosition(item, ix)
		if p.Position == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func normalizePosition(item gjson.Result, ix TypeIndex) Posting {
	p := Posting{ID: idOf(item.Get("id"))}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Position = strings.TrimSpace(item.Get("name").String())
	if p.Position == "" {
		p.Position = strings.TrimSpace(item.Get("position").String())
	}

	switch t := item.Get("type"); {
	case t.Type == gjson.String:
		p.TypeName = strings.TrimSpace(t.String())
	case t.IsObject():
		p.TypeName = strings.TrimSpace(t.Get("name").String())
		p.TypeID = firstID(t, "id", "type_id")
	}

	tid := idOf(item.Get("type_id"))
	if p.TypeName == "" {
		if name := ix.Name(tid); name != "" {
			p.TypeName = name
			p.TypeID = tid
		}
	}
	if p.TypeID == "" && p.TypeName != "" {
		p.TypeID = tid
	}
	return p
}
