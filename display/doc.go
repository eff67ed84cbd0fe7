// Package display is the boundary between the routing core and whatever
// draws the map. It turns graph data into points and segments and answers
// "which city did the user click on?".
//
// The click tolerance belongs here, not in citygraph or dijkstra: the core
// works with exact coordinates and never guesses.
package display
