package domain

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
)

// Record is one raw page returned by the external database. Property values
// stay undecoded so a single mistyped field cannot fail the whole page.
type Record struct {
	ID         string                     `json:"id"`
	Properties map[string]json.RawMessage `json:"properties"`
}

// Has reports whether the record carries a property with the given name.
func (r Record) Has(name string) bool {
	_, ok := r.Properties[name]
	return ok
}

// Property decodes the named property. It returns false when the property is
// missing or not shaped like a property value.
func (r Record) Property(name string) (Property, bool) {
	raw, ok := r.Properties[name]
	if !ok {
		return Property{}, false
	}

	var p Property
	if err := json.Unmarshal(raw, &p); err != nil {
		return Property{}, false
	}
	return p, true
}

// Property is the union of the property shapes the gallery reads
type Property struct {
	Type     string     `json:"type"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Select   *Option    `json:"select,omitempty"`
	Status   *Option    `json:"status,omitempty"`
	Date     *DateRange `json:"date,omitempty"`
	Files    FileList   `json:"files,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

type Option struct {
	Name string `json:"name"`
}

type DateRange struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// File is an entry of a files property. External entries are hosted
// elsewhere; file entries are hosted by the source behind signed URLs.
type File struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	External *FileLocation `json:"external,omitempty"`
	File     *FileLocation `json:"file,omitempty"`
}

// FileList decodes its entries one at a time and drops entries that are not
// shaped like a file, keeping the well-formed ones.
type FileList []File

func (l *FileList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = lo.FilterMap(raw, func(entry json.RawMessage, _ int) (File, bool) {
		var f File
		return f, json.Unmarshal(entry, &f) == nil
	})
	return nil
}

type FileLocation struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time,omitempty"`
}

// Text concatenates the plain text of rich text segments.
func Text(segments []RichText) string {
	return strings.Join(lo.Map(segments, func(t RichText, _ int) string {
		return t.PlainText
	}), "")
}
