// services/ctrl/topics.go
package ctrl

import "glowgrid-go/bus"

var (
	topicState      = bus.T("ctrl", "state")
	topicTierValue  = bus.T("power", "tier", "value")
	topicRailState  = bus.T("power", "rail", "state")
	topicTouchValue = bus.T("input", "touch", "value")
	topicColorValue = bus.T("display", "color", "value")
)
