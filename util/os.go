package util

import (
	"log"
	"os"
	"path/filepath"
)

// GetHostname returns the local hostname or a default string if an error occurs.
func GetHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		log.Printf("Error getting hostname: %v", err)
		return "unknown-host"
	}
	return hostname
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Error resolving home directory: %v", err)
		return path
	}
	return filepath.Join(home, path[1:])
}
