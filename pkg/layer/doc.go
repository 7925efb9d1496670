// Package layer models the animatable visual surfaces a control is composed of.
//
// A [Surface] holds a model [State] (the values at rest) and an ordered list
// of keyed [Animation] records. Reading a surface's presentation at a point in
// global media time evaluates every animation that is active at that instant
// on top of the model values, in insertion order, so later animations on the
// same property win.
//
// Each surface keeps its own local clock ([Timing]). Animation begin times are
// expressed in that local time; callers convert a global timestamp with
// [Surface.ConvertTime] before scheduling. Surfaces that joined a hierarchy at
// different moments therefore stay aligned when driven from one timestamp.
package layer
