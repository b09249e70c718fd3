package sim

// System is one stage of a frame. Systems run in registration order and
// read or mutate the world through the frame they are handed.
type System interface {
	Execute(frame *UpdateFrame)
}
