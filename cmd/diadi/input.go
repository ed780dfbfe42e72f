package main

import (
	"github.com/alfredjeanlab/diadi/internal/model"
	"github.com/alfredjeanlab/diadi/internal/sessionfile"
)

// feedPath returns the feed path from positional args at index i, defaulting to stdin.
func feedPath(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return sessionfile.Stdin
}

func loadSessions(args []string, i int) ([]model.Session, error) {
	return sessionfile.ReadFile(feedPath(args, i))
}
