package record

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Record is one employee row as the records backend returns it. Field names
// follow the backend's JSON keys.
type Record struct {
	Empcode   Text     `json:"Empcode"`
	FirstName string   `json:"FirstName"`
	LastName  string   `json:"LastName"`
	Dept      string   `json:"Dept"`
	Region    string   `json:"Region"`
	Branch    string   `json:"Branch"`
	Hiredate  HireDate `json:"Hiredate"`
	Salary    Salary   `json:"Salary"`
}

// Text is a string the backend sometimes emits as a JSON number
// (spreadsheet cells holding employee codes are often numeric).
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// HireDate accepts RFC3339 timestamps, plain dates and null. Values in any
// other shape decode to an unset date rather than failing the whole list.
type HireDate struct {
	Time  time.Time
	Valid bool
}

var hireDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (d *HireDate) UnmarshalJSON(b []byte) error {
	*d = HireDate{}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// null or a non-string value
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range hireDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = HireDate{Time: t, Valid: true}
			return nil
		}
	}
	return nil
}

func (d HireDate) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}

// Display renders the date as M/D/YYYY, empty when unset.
func (d HireDate) Display() string {
	if !d.Valid {
		return ""
	}
	return d.Time.UTC().Format("1/2/2006")
}

// Salary is numeric on the wire but may arrive quoted.
type Salary struct {
	Value float64
	Valid bool
}

func (s *Salary) UnmarshalJSON(b []byte) error {
	*s = Salary{}
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || len(b) == 0 {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
		if raw == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	*s = Salary{Value: v, Valid: true}
	return nil
}

func (s Salary) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

func (s Salary) Display() string {
	if !s.Valid {
		return ""
	}
	return strconv.FormatFloat(s.Value, 'f', -1, 64)
}

// FileHandle is a spreadsheet waiting to be uploaded.
type FileHandle struct {
	Name        string
	Content     []byte
	ContentType string
}

// NewFileHandle sniffs the content type from the bytes. The extension is not
// checked; the file picker's accept list is advisory only.
func NewFileHandle(name string, content []byte) FileHandle {
	return FileHandle{
		Name:        name,
		Content:     content,
		ContentType: mimetype.Detect(content).String(),
	}
}
