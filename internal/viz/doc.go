// Package viz renders trajectories and maxima sequences in the terminal.
//
// It provides asciigraph time-series plots, braille-canvas scatter plots of
// trajectory projections and the Lorenz return map, and a bubbletea live view
// of the attractor with runtime parameter adjustment.
package viz
