// Package terminal provides the terminal drivers the snake session runs on.
//
// Screen drives a real terminal through tcell: raw mode, cursor control,
// colored output and timed input polling. Memory renders into a
// core.Screen buffer and replays scripted input, so the game loop can be
// exercised without a terminal.
package terminal
