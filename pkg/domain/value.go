package domain

// OutputPayload is the raw result of a single cell execution.
// It is treated as immutable once received.
type OutputPayload struct {
	Type MIMEType `json:"mime"`
	Data []byte   `json:"data"`
}

// Value is the decoded form of an OutputPayload.
// It is implemented by JSONValue and HTMLValue only.
type Value interface {
	// Data returns the value as generic structured data, the shape the
	// formatting routines inspect.
	Data() any

	isValue()
}

// JSONValue holds an arbitrary decoded JSON document.
// Numbers are kept as json.Number when produced by the decoder.
type JSONValue struct {
	Value any
	// Source is the document text Value was decoded from, when known.
	// It keeps object key order for views that print the document back.
	Source string
}

// Data returns the decoded document.
func (v JSONValue) Data() any { return v.Value }

func (JSONValue) isValue() {}

// HTMLValue holds raw HTML text. It is never validated or sanitized by the decoder.
type HTMLValue struct {
	HTML string
}

// Data returns {"html": text}.
func (v HTMLValue) Data() any {
	return map[string]any{"html": v.HTML}
}

func (HTMLValue) isValue() {}

// DataOf returns v.Data(), or nil when v itself is nil.
func DataOf(v Value) any {
	if v == nil {
		return nil
	}
	return v.Data()
}
