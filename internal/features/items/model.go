package items

import (
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Kind classifies an item as lost or found. Fixed at creation.
type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
	// KindAll is the unrestricted sentinel used in filters only.
	KindAll Kind = "all"
)

// Status is the item lifecycle flag. The canonical vocabulary is the
// Indonesian one the store uses; legacy aliases are normalized on decode.
type Status string

const (
	StatusSearching Status = "dicari"
	StatusFound     Status = "ditemukan"
	StatusClaimed   Status = "diclaim"
	// StatusAll is the unrestricted sentinel used in filters only.
	StatusAll Status = "all"
)

var statusLabels = map[Status]string{
	StatusSearching: "Searching",
	StatusFound:     "Found",
	StatusClaimed:   "Claimed",
}

// Label returns the display label for a status.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// NormalizeStatus maps legacy status aliases onto the canonical vocabulary.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dicari", "open":
		return StatusSearching
	case "ditemukan", "resolved":
		return StatusFound
	case "diclaim", "claimed":
		return StatusClaimed
	case "", "all":
		return StatusAll
	default:
		return Status(strings.ToLower(strings.TrimSpace(raw)))
	}
}

// Sort orders results by creation time.
type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
)

// Item represents a reported lost or found object.
type Item struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ContactInfo string     `json:"contact_info"`
	OccurredAt  *time.Time `json:"date,omitempty"`
	Status      Status     `json:"status"`
	PhotoRef    string     `json:"photo,omitempty"`
	OwnerID     string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// itemWire mirrors the store's loose JSON shape. The store variously emits
// name/title, contact/contact_info, userId/user_id, and numeric or string ids.
type itemWire struct {
	ID           json.RawMessage `json:"id"`
	Title        string          `json:"title"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Kind         string          `json:"type"`
	ItemType     string          `json:"item_type"`
	Status       string          `json:"status"`
	Location     string          `json:"location"`
	Date         string          `json:"date"`
	Contact      string          `json:"contact"`
	ContactInfo  string          `json:"contact_info"`
	Photo        string          `json:"photo"`
	UserID       json.RawMessage `json:"userId"`
	UserIDSnake  json.RawMessage `json:"user_id"`
	CreatedAt    string          `json:"createdAt"`
	CreatedSnake string          `json:"created_at"`
}

// UnmarshalJSON absorbs the store's field aliases into one typed shape.
func (it *Item) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	it.ID = decodeWireID(w.ID)
	it.Title = firstNonEmpty(w.Title, w.Name)
	it.Description = w.Description
	it.Kind = Kind(strings.ToLower(firstNonEmpty(w.Kind, w.ItemType)))
	it.Status = NormalizeStatus(w.Status)
	it.Location = w.Location
	it.ContactInfo = firstNonEmpty(w.ContactInfo, w.Contact)
	it.PhotoRef = w.Photo
	it.OwnerID = firstNonEmpty(decodeWireID(w.UserID), decodeWireID(w.UserIDSnake))

	if t, ok := parseWireTime(w.Date); ok {
		it.OccurredAt = &t
	}
	if t, ok := parseWireTime(firstNonEmpty(w.CreatedAt, w.CreatedSnake)); ok {
		it.CreatedAt = t
	}
	return nil
}

func decodeWireID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return strings.Trim(string(raw), `"`)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseWireTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterSpec describes which items to retrieve and how to order them.
// It is ephemeral and client-held, never persisted.
type FilterSpec struct {
	Kind     Kind
	Status   Status
	Search   string
	Sort     Sort
	Page     int
	PageSize int
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// DefaultFilter returns the no-op filter for a given stream.
func DefaultFilter(kind Kind) FilterSpec {
	return FilterSpec{
		Kind:     kind,
		Status:   StatusAll,
		Sort:     SortNewest,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Canonical trims free text and fills zero values with defaults.
func (f FilterSpec) Canonical() FilterSpec {
	f.Search = strings.TrimSpace(f.Search)
	if f.Kind == "" {
		f.Kind = KindAll
	}
	if f.Status == "" {
		f.Status = StatusAll
	}
	if f.Sort == "" {
		f.Sort = SortNewest
	}
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	return f
}

// Values encodes the filter as store query parameters. Fields equal to their
// no-op default are omitted to keep requests minimal and cache-friendly.
func (f FilterSpec) Values() url.Values {
	f = f.Canonical()

	params := url.Values{}
	params.Set("type", string(f.Kind))
	params.Set("page", strconv.Itoa(f.Page))
	params.Set("limit", strconv.Itoa(f.PageSize))
	if f.Status != StatusAll {
		params.Set("status", string(f.Status))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Sort != SortNewest {
		params.Set("sort", string(f.Sort))
	}
	return params
}

// ResultSet is the normalized outcome of a query against the store.
// It is replaced wholesale on each settled fetch, never mutated in place.
type ResultSet struct {
	Items    []Item `json:"items"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	HasNext  bool   `json:"hasNext"`
}

// PhotoAttachment is an opaque image payload forwarded to the store. The
// client never inspects or validates its content.
type PhotoAttachment struct {
	FileName string
	Reader   io.Reader
}

// CreateItemRequest carries the fields required to report a new item.
type CreateItemRequest struct {
	Title       string
	Description string
	Kind        Kind
	Location    string
	ContactInfo string
	OccurredAt  *time.Time
	Photo       *PhotoAttachment
}

// UpdateItemRequest carries a partial update. Nil fields are left untouched.
type UpdateItemRequest struct {
	Title       *string
	Description *string
	Kind        *Kind
	Location    *string
	ContactInfo *string
	Status      *Status
	OccurredAt  *time.Time
	Photo       *PhotoAttachment
}
