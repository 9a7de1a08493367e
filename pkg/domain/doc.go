/*
Package domain contains the core types shared by the cellview parser and renderer.

It defines what crosses the boundary between the host that decodes cell outputs and
the display surface that renders them. This package is kept pure and free of I/O.

# Key Entities

  - OutputPayload: The raw bytes of one cell output, tagged with a MIME-like type.
  - Value: The decoded form of a payload (JSONValue or HTMLValue).
  - MIMEType: One of the recognized type tags, and the Route it dispatches to.
  - Hooks: Optional callbacks fired after every parse and render call.
*/
package domain
