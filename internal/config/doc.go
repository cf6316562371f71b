package config

// Package config persists user-adjustable settings through Fyne's
// preferences API, writing defaults back on first read.
