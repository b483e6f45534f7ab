// Package http provides optional HTTP adapters for the admin editor.
//
// Routes mount under /admin by default and match the admin route group the
// helpers link to:
//   - Essence editors: /elements/{element_id}/contents/{name}/editor
//   - Missing contents: /elements/{element_id}/contents/new
//   - Essence updates: /contents/{content_id}
//   - Picture dialog: /contents/{content_id}/picture/edit
//   - Thumbnails: /pictures/{id}/thumbnails/{size}/{name}
//   - Page select options: /pages/options
//   - Language switch: /languages/{code}/switch
//
// Host applications can register handlers on their own mux/router as needed.
package http
