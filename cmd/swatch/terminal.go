package main

import (
	"os"

	"golang.org/x/term"
)

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func supportsUnicode(writer any) bool {
	return isTerminal(writer)
}

// canPrompt reports whether both ends of the command are a terminal.
func canPrompt(in, out any) bool {
	return isTerminal(in) && isTerminal(out)
}
