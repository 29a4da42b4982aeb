/*
Package domain contains the core domain models of the star rating engine.

It defines the configuration of a widget, the pointer samples a rendering
surface feeds into it, and the observable state of the interaction state
machine. This package is kept pure and free of I/O, so that every surface
(terminal, HTTP, MCP, raster) can share the same vocabulary.

# Key Entities

  - Config: Immutable widget configuration (stars, half ratings, hover, read-only, visuals).
  - PointerSample: A pointer position expressed as a star index and a fraction inside that star.
  - Snapshot: The committed rating, the optional preview rating and the current Mode.
  - Frame: What a rendering surface needs to paint the row of glyphs.
  - Preset: A named, documented configuration.
*/
package domain
