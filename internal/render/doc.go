// Package render turns a numeric sequence into an RGB image.
//
// Five modes share one contract, [Renderer], and are looked up through a
// [Registry]:
//
//   - [Raster] ("RGB"): fills the canvas row by row, cycling the sequence
//   - [Automaton] ("cellular_automaton"): an elementary automaton seeded from the sequence
//   - [Meander] ("meander"): an 8-direction walk, one step per value
//   - [Walk] ("angle and length", "run and turn"): a turtle walk over (length, turn) pairs
//
// Colors come from [palette.Mapper]. Path renderers consult a [boundary.Policy]
// once per step to decide where the next step starts.
//
// # Example
//
//	cfg := render.DefaultConfig()
//	cfg.Mode = render.ModeMeander
//	canvas, err := render.RenderText("3, 141, 59, 26", cfg)
//	if err != nil {
//	    return err
//	}
//	buf := canvas.Float32() // HWC, [0,1]
//
// # Thread Safety
//
// A render owns its Canvas and DrawState. Separate renders may run
// concurrently; a single Canvas must not be shared while it is drawn on.
package render
