package game

// System is one step of an update cycle. Systems run in registration order
// against the same UpdateFrame and can keep their own state between cycles.
type System interface {
	Execute(frame *UpdateFrame)
}
