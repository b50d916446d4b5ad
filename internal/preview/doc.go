// Package preview holds the single active preview surface for the selected
// catalog entry. Only Select changes it: each call stops audio, drops the
// previous surface and loads the new one.
package preview
