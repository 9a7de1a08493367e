package domain

// MIMEType is the MIME-like tag attached to a cell output.
// It identifies the payload format and the renderer route, and is matched
// exactly (case-sensitive).
type MIMEType string

const (
	MIMECustomJSONOutput MIMEType = "x-application/custom-json-output"
	MIMEJSON             MIMEType = "application/vnd.code.notebook.my-custom-json"
	MIMEHTML             MIMEType = "application/vnd.code.notebook.my-custom-html"
	MIMETable            MIMEType = "application/vnd.code.notebook.my-custom-table"
	MIMEChart            MIMEType = "application/vnd.code.notebook.my-custom-chart"
)

// Route names the formatting routine a tag dispatches to.
type Route string

const (
	RouteUnknown Route = "unknown"
	RouteHTML    Route = "html"
	RouteTable   Route = "table"
	RouteChart   Route = "chart"
)

// SupportedTypes lists the recognized tags in registration order.
var SupportedTypes = []MIMEType{
	MIMECustomJSONOutput,
	MIMEJSON,
	MIMEHTML,
	MIMETable,
	MIMEChart,
}

// IsSupported reports whether t is one of the recognized tags.
func (t MIMEType) IsSupported() bool {
	for _, s := range SupportedTypes {
		if s == t {
			return true
		}
	}
	return false
}

// IsJSON reports whether payloads of this type carry a JSON document.
func (t MIMEType) IsJSON() bool {
	switch t {
	case MIMECustomJSONOutput, MIMEJSON, MIMETable, MIMEChart:
		return true
	}
	return false
}

// Route returns the formatting routine for t.
// Unrecognized tags fall back to RouteUnknown.
func (t MIMEType) Route() Route {
	switch t {
	case MIMEHTML:
		return RouteHTML
	case MIMETable:
		return RouteTable
	case MIMEChart:
		return RouteChart
	default:
		return RouteUnknown
	}
}
