// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/satchel/internal/adapters/config"
	_ "go.trai.ch/satchel/internal/adapters/digest"
	_ "go.trai.ch/satchel/internal/adapters/logger"
	_ "go.trai.ch/satchel/internal/adapters/report"
	_ "go.trai.ch/satchel/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/satchel/internal/app"
	_ "go.trai.ch/satchel/internal/engine/enumerator"
)
