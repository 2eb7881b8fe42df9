package event

import "github.com/wagoodman/go-partybus"

const (
	typePrefix    = "deployflow"
	cliTypePrefix = typePrefix + "-cli"

	// Events from the deployflow library

	// TaskStartedEvent is a generic, monitorable partybus event that occurs when a task has begun
	TaskStartedEvent partybus.EventType = typePrefix + "-task"

	// Events exclusively for the CLI

	// CLIScanCmdStarted is a partybus event that occurs when the scan cli command has begun
	CLIScanCmdStarted partybus.EventType = cliTypePrefix + "-scan-cmd-started"

	// CLIReport is a partybus event that occurs when the cli is ready to generate a report
	CLIReport partybus.EventType = cliTypePrefix + "-report"

	// CLINotification is a partybus event that occurs when auxiliary information is ready for presentation to stderr
	CLINotification partybus.EventType = cliTypePrefix + "-notification"
)
