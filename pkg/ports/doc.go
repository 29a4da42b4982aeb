/*
Package ports defines the collaborator interfaces around the rating engine.

These interfaces decouple the interaction state machine from the rendering
surfaces that drive it and from the catalogs that supply configurations.

# Key Interfaces

  - Surface: Receives a Frame after every state-changing event and paints it.
  - Widget: The query/command set a surface or adapter uses to drive a widget.
  - PresetLoader: Responsible for loading named presets (e.g., from Loam or Memory).
*/
package ports
