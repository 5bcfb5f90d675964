// Package tui is the interactive result browser behind --browse.
package tui

type state int

const (
	listState state = iota
	detailState
)
