// Package radio implements an animated radio button.
//
// A [Control] is three concentric circular surfaces:
//
//   - the outer ring, always visible, colored by the current state;
//   - the inner fill, whose border thickens to fill the ring on selection;
//   - the wave, a ripple that expands and fades only while selecting.
//
// Select and Deselect apply the resting values synchronously, fire the
// matching callback, and then schedule a fixed choreography of property
// animations against a single start timestamp. Reads made right after a call
// therefore observe the final state; the animation is purely visual.
//
// Basic usage:
//
//	c, err := radio.New(radio.DefaultConfig().WithDiameter(24))
//	if err != nil {
//	    return err
//	}
//	c.OnSelect(func() { log.Println("selected") })
//	c.Select(true)
//
// A Control knows nothing about its siblings. Hosts that present a group keep
// a single selection by calling Deselect on the previous control and Select
// on the new one.
package radio
