/*
Package ports defines the interfaces between cellview's core and its collaborators.

The host that produces cell outputs only sees a Decoder. The display surface only sees a
Renderer, and it owns the Regions markup is written into. The transport that carries a
decoded value from one side to the other is not modelled here.

# Key Interfaces

  - Decoder: Turns a tagged OutputPayload into a domain.Value.
  - Renderer: Clears a Region and writes the formatted markup for a value into it.
  - Region: A mutable markup container owned by the display surface.
  - Surface: A collection of named Regions (memory, Redis).
*/
package ports
