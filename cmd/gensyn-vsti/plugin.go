//go:build plugin

package main

const (
	PLUGIN_ID   = 0x47534e31 // GSN1
	PLUGIN_NAME = "GenSyn"
)
