package session

import "github.com/abhisek/careaid/internal/printmode"

// printRequestMsg is sent by the print menu.
type printRequestMsg struct {
	Kind printmode.Kind
}

// printCancelMsg closes the print menu.
type printCancelMsg struct{}
