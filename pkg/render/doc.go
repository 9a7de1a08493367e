/*
Package render implements the display-side output renderer.

A Renderer dispatches on the type tag of a value to one of four formatting routines
(table, html, chart, unknown) and writes the resulting markup into a ports.Region.
Formatting never fails outward: any problem with the content, including a recovered
panic, is rendered in place as an error block.

# Escaping

By default (EscapeText) table cells, headers, chart titles, the fallback JSON text and
error messages are HTML-escaped. EscapeNone reproduces the legacy behaviour where all of
them are interpolated verbatim. HTML payloads are written verbatim under both policies
unless an HTML sanitizer is configured.
*/
package render
