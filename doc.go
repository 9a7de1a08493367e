/*
Package cellview renders notebook cell outputs as HTML.

A cell execution produces a payload: raw bytes tagged with a MIME-like type. cellview
decodes the payload on the host side and renders it on the display side into a region,
as a table, raw HTML, a small SVG line chart, or an indented JSON fallback view.

# Concept

The parser and the renderer share no state. Whatever carries the decoded value from one
to the other (a webview message channel, an HTTP request, an MCP call) is the host's
business; cellview only defines the two ports (ports.Decoder and ports.Renderer) and the
regions markup is written into.

# Type Tags

	x-application/custom-json-output                JSON  -> indented JSON view
	application/vnd.code.notebook.my-custom-json    JSON  -> indented JSON view
	application/vnd.code.notebook.my-custom-html    text  -> verbatim HTML
	application/vnd.code.notebook.my-custom-table   JSON  -> table
	application/vnd.code.notebook.my-custom-chart   JSON  -> SVG line chart

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/cellview"
		"github.com/aretw0/cellview/pkg/adapters/memory"
		"github.com/aretw0/cellview/pkg/domain"
	)

	func main() {
		eng := cellview.New()
		region := memory.NewRegion()

		payload := domain.OutputPayload{
			Type: domain.MIMETable,
			Data: []byte(`{"headers":["name","score"],"rows":[["ada",3]]}`),
		}
		if err := eng.Display(context.Background(), region, payload); err != nil {
			log.Fatal(err)
		}

		markup, _ := region.Markup(context.Background())
		fmt.Println(markup)
	}

Rendering never fails on content: a malformed table or chart becomes an inline error
block. Only parse failures and region I/O failures are returned as errors.
*/
package cellview
